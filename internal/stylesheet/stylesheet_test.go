package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	css := `.p-sm {
	padding: 4px;
}
.px-sm {
	padding-left: 4px;
	padding-right: 4px;
}
@media screen and (min-width: 768px) {
	.p-md-sm {
		padding: 4px;
	}
}`

	rules, err := Parse(css)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, Rule{
		Selector:     ".p-sm",
		Declarations: []Declaration{{Property: "padding", Value: "4px"}},
	}, rules[0])

	assert.Equal(t, []Declaration{
		{Property: "padding-left", Value: "4px"},
		{Property: "padding-right", Value: "4px"},
	}, rules[1].Declarations)

	assert.Equal(t, "screen and (min-width: 768px)", rules[2].Media)
	assert.Equal(t, ".p-md-sm", rules[2].Selector)
	assert.Equal(t, "@media screen and (min-width: 768px) .p-md-sm", rules[2].Key())
}

func TestParse_Whitespace(t *testing.T) {
	rules, err := Parse(`@media   screen and (min-width:48em){.m-lg-2{margin:0.5rem}}`)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	assert.Equal(t, "screen and (min-width:48em)", rules[0].Media)
	assert.Equal(t, ".m-lg-2", rules[0].Selector)
	assert.Equal(t, "margin: 0.5rem;", rules[0].Body())
}

func TestParse_SkipsCommentsAndOtherAtRules(t *testing.T) {
	css := `/* generated */
@charset "utf-8";
@font-face { font-family: x; src: url(x.woff); }
.p-sm { /* note */ padding: 4px; }`

	rules, err := Parse(css)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, ".p-sm", rules[0].Key())
	assert.Equal(t, "padding: 4px;", rules[0].Body())
}

func TestParse_NestedMedia(t *testing.T) {
	css := `@media screen {
	@media (min-width: 40em) {
		.p-md-sm { padding: 1px; }
	}
	.p-sm { padding: 1px; }
}
.m-sm { margin: 1px; }`

	rules, err := Parse(css)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, "screen and (min-width: 40em)", rules[0].Media)
	assert.Equal(t, "screen", rules[1].Media)
	assert.Equal(t, "", rules[2].Media)
}

func TestParse_Empty(t *testing.T) {
	rules, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, rules)
}
