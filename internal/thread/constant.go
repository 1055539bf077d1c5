package thread

const (
	DefaultUpdateInterval = 3
	DefaultMaxThreads     = 5

	// Words of this length or shorter never become keywords.
	maxIgnoredWordLength = 2
)

// stopwordList holds common function words plus spoken filler.
const stopwordList = `
i me my myself we our ours ourselves you your yours yourself yourselves
he him his himself she her hers herself it its itself they them their theirs themselves
what which who whom this that these those am is are was were be been being
have has had having do does did doing a an the and but if or because as until while
of at by for with about against between into through during before after above below
to from up down in out on off over under again further then once here there
when where why how all each few more most other some such no nor not only own same
so than too very s t can will just don should now d ll m o re ve y
ain aren couldn didn doesn hadn hasn haven isn ma mightn mustn needn shan shouldn
wasn weren won wouldn
yeah yes ok okay um uh like know think really well got get going want need
would could might must shall may
`
