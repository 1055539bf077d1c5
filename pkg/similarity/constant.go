package similarity

// DefaultThreshold is the Jaccard score at or above which two texts count as near duplicates.
const DefaultThreshold = 0.6
