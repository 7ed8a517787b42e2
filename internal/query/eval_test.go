package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-hunt/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustParse(t *testing.T, input string) *Query {
	t.Helper()
	q, err := Parse(input)
	require.NoError(t, err)
	return q
}

func TestEvalTextEqualityCaseInsensitive(t *testing.T) {
	j := &models.Job{Company: "Acme Corp"}

	assert.True(t, mustParse(t, `select jobs where company = "acme corp"`).Where.Eval(j))
	assert.True(t, mustParse(t, `select jobs where company = "ACME CORP"`).Where.Eval(j))
	assert.False(t, mustParse(t, `select jobs where company != "Acme Corp"`).Where.Eval(j))
	assert.False(t, mustParse(t, `select jobs where company = "acme"`).Where.Eval(j))
}

func TestEvalEmptyOptionalFieldIsEmptyString(t *testing.T) {
	j := &models.Job{Title: "Dev"} // location never set

	assert.True(t, mustParse(t, `select jobs where location = ""`).Where.Eval(j))
	assert.True(t, mustParse(t, `select jobs where location like "%"`).Where.Eval(j))
	assert.False(t, mustParse(t, `select jobs where location like "remote%"`).Where.Eval(j))
}

func TestLikeWildcardSemantics(t *testing.T) {
	cases := []struct {
		value   string
		pattern string
		want    bool
	}{
		{"Senior Rust Engineer", "%senior%", true},
		{"Staff SENIOR dev", "%senior%", true},
		{"Junior dev", "%senior%", false},
		{"senior", "%senior%", true},
		{"Senior dev", "senior%", true},
		{"Lead Senior dev", "senior%", false},
		{"Lead Senior", "%senior", true},
		{"anything", "%", true},
		{"", "%", true},
		{"", "%x%", false},
		{"abc", "abc", true},
		{"abc", "ABC", true},
		{"abc", "a%c", true},
		{"ac", "a%c", true},
		{"acb", "a%b%c", false},
		{"aXbYc", "a%b%c", true},
		{"ab", "a%b%", true},
		{"100% remote", "%100% remote%", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, likeMatch(tc.value, tc.pattern),
			"likeMatch(%q, %q)", tc.value, tc.pattern)
	}
}

func TestEvalNumericComparisons(t *testing.T) {
	j := &models.Job{RemLower: 80, RemUpper: 120}

	cases := []struct {
		input string
		want  bool
	}{
		{"select jobs where rem_upper > 100", true},
		{"select jobs where rem_upper > 120", false},
		{"select jobs where rem_upper >= 120", true},
		{"select jobs where rem_lower < 100", true},
		{"select jobs where rem_lower <= 80", true},
		{"select jobs where rem_lower = 80", true},
		{"select jobs where rem_lower != 80", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mustParse(t, tc.input).Where.Eval(j), tc.input)
	}
}

func TestEvalDateOrdering(t *testing.T) {
	j := &models.Job{DatePosted: date(2024, 5, 15)}

	cases := []struct {
		input string
		want  bool
	}{
		{`select jobs where date_posted > "2024-05-01"`, true},
		{`select jobs where date_posted < "2024-05-01"`, false},
		{`select jobs where date_posted = "2024-05-15"`, true},
		{`select jobs where date_posted != "2024-05-15"`, false},
		{`select jobs where date_posted >= "2024-05-15"`, true},
		{`select jobs where date_posted <= "2024-05-14"`, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mustParse(t, tc.input).Where.Eval(j), tc.input)
	}
}

func TestEvalBooleanCombinators(t *testing.T) {
	j := &models.Job{Title: "Senior Dev", RemUpper: 150, Site: "https://web3.career"}

	cases := []struct {
		input string
		want  bool
	}{
		{`select jobs where title like "%senior%" and rem_upper > 100`, true},
		{`select jobs where title like "%senior%" and rem_upper > 200`, false},
		{`select jobs where title like "%junior%" or rem_upper > 100`, true},
		{`select jobs where title like "%junior%" or rem_upper > 200`, false},
		// and binds tighter than or: false or (true and true)
		{`select jobs where site = "x" or title like "senior%" and rem_upper > 100`, true},
		// (false and true) or ... vs false and (true or ...): and-first wins
		{`select jobs where site = "x" and title like "senior%" or rem_upper > 100`, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mustParse(t, tc.input).Where.Eval(j), tc.input)
	}
}
