package generator

// Member is one class prefix of a property family and the CSS
// properties it sets.
type Member struct {
	Prefix     string   // "px"
	Properties []string // ["padding-left", "padding-right"]
}

// Family is an ordered set of members sharing one spacing scale.
type Family struct {
	Name    string
	Members []Member
}

// Padding is the padding property family.
var Padding = Family{
	Name: "padding",
	Members: []Member{
		{Prefix: "p", Properties: []string{"padding"}},
		{Prefix: "pt", Properties: []string{"padding-top"}},
		{Prefix: "pb", Properties: []string{"padding-bottom"}},
		{Prefix: "pl", Properties: []string{"padding-left"}},
		{Prefix: "pr", Properties: []string{"padding-right"}},
		{Prefix: "px", Properties: []string{"padding-left", "padding-right"}},
		{Prefix: "py", Properties: []string{"padding-top", "padding-bottom"}},
		{Prefix: "pin", Properties: []string{"padding-inline"}},
		{Prefix: "pbl", Properties: []string{"padding-block"}},
	},
}

// Margin is the margin property family.
var Margin = Family{
	Name: "margin",
	Members: []Member{
		{Prefix: "m", Properties: []string{"margin"}},
		{Prefix: "mt", Properties: []string{"margin-top"}},
		{Prefix: "mb", Properties: []string{"margin-bottom"}},
		{Prefix: "ml", Properties: []string{"margin-left"}},
		{Prefix: "mr", Properties: []string{"margin-right"}},
		{Prefix: "mx", Properties: []string{"margin-left", "margin-right"}},
		{Prefix: "my", Properties: []string{"margin-top", "margin-bottom"}},
		{Prefix: "min", Properties: []string{"margin-inline"}},
		{Prefix: "mbl", Properties: []string{"margin-block"}},
	},
}

// Families is the generation order: padding before margin.
var Families = []Family{Padding, Margin}
