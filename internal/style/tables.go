package style

// Rule maps one classification value to a label and fill color.
type Rule struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Table is the static lookup for one layer.
type Table struct {
	Kind        Kind
	Title       string
	Rules       []Rule
	Default     Rule
	FillOpacity float64
}

// Rule returns the rule for key, or the table default.
func (t Table) Rule(key string) Rule {
	for _, r := range t.Rules {
		if r.Key == key {
			return r
		}
	}
	return t.Default
}

// ClustersTable colors clusters by milestone stage.
var ClustersTable = Table{
	Kind:  Clusters,
	Title: "Cluster milestones",
	Rules: []Rule{
		{Key: "0", Label: "Milestone 0", Color: "#D7191C"},
		{Key: "1", Label: "Milestone 1", Color: "#FDAE61"},
		{Key: "2", Label: "Milestone 2", Color: "#27823B"},
		{Key: "3", Label: "Milestone 3", Color: "#2B83BA"},
	},
	Default:     Rule{Key: "default", Label: "Unknown", Color: "#9E9E9E"},
	FillOpacity: 0.6,
}

// GeologicalTable colors geological units by lithology code.
var GeologicalTable = Table{
	Kind:  Geological,
	Title: "Lithology",
	Rules: []Rule{
		{Key: "Qal", Label: "Quaternary alluvium", Color: "#FFD166"},
		{Key: "Qt", Label: "Quaternary terrace deposits", Color: "#F4A261"},
		{Key: "Tv", Label: "Tertiary volcanics", Color: "#E76F51"},
		{Key: "Kg", Label: "Cretaceous granite", Color: "#EF476F"},
		{Key: "Jm", Label: "Jurassic metasediments", Color: "#8338EC"},
		{Key: "Pzs", Label: "Paleozoic sedimentary rocks", Color: "#06D6A0"},
		{Key: "pC", Label: "Precambrian basement", Color: "#073B4C"},
	},
	Default:     Rule{Key: "default", Label: "Other", Color: "#118AB2"},
	FillOpacity: 0.5,
}

// TableFor returns the lookup table of a layer. Unknown kinds fall back
// to the clusters table so that a style is always defined.
func TableFor(kind Kind) Table {
	if kind == Geological {
		return GeologicalTable
	}
	return ClustersTable
}
