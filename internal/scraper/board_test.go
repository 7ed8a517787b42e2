package scraper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGetter serves canned page bodies keyed by URL.
type stubGetter struct {
	pages map[string]string
}

func (s *stubGetter) Fetch(_ context.Context, url string) (string, error) {
	body, ok := s.pages[url]
	if !ok {
		return "", fmt.Errorf("no fixture for %q", url)
	}
	return body, nil
}

const web3Fixture = `<html><body><table><tbody>
<tr onclick="window.location.href='/senior-rust-engineer-1'">
  <td>
    <div>
      <div><div><a href="#"><h2>Senior Rust Engineer</h2></a></div></div>
      <div><span>rust</span><span>defi</span></div>
    </div>
  </td>
  <td><a href="#"><h3>ChainCo</h3></a></td>
  <td><time datetime="2024-05-10T12:30:00"></time></td>
  <td>Remote</td>
  <td><p>$90k - $120k</p></td>
</tr>
<tr><td>sponsored row without a title</td></tr>
</tbody></table></body></html>`

func TestWeb3CareersScrape(t *testing.T) {
	g := &stubGetter{pages: map[string]string{
		Web3CareersURL + "?page=1": web3Fixture,
	}}

	board := &Web3Careers{Pages: 1}
	jobs, err := board.Scrape(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	j := jobs[0]
	assert.Equal(t, "Senior Rust Engineer", j.Title)
	assert.Equal(t, "ChainCo", j.Company)
	assert.Equal(t, "Remote", j.Location)
	assert.Equal(t, "$90k - $120k", j.Remuneration)
	assert.Equal(t, Web3CareersURL+"/senior-rust-engineer-1", j.Apply)
	assert.Equal(t, Web3CareersURL, j.Site)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), j.DatePosted)
	assert.Equal(t, []string{"rust", "defi"}, []string(j.Tags))
}

func TestWeb3CareersScrapePaginates(t *testing.T) {
	g := &stubGetter{pages: map[string]string{
		Web3CareersURL + "?page=1": web3Fixture,
		Web3CareersURL + "?page=2": web3Fixture,
	}}

	board := &Web3Careers{Pages: 2}
	jobs, err := board.Scrape(context.Background(), g)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestWeb3CareersScrapePropagatesFetchError(t *testing.T) {
	board := &Web3Careers{Pages: 1}
	_, err := board.Scrape(context.Background(), &stubGetter{})
	assert.Error(t, err)
}

const talentFixture = `<html><body>
<div class="job-list-item">
  <h4><a href="/jobs/4010"><div><div>Protocol Engineer</div></div></a></h4>
  <div><div><a href="/companies/anvil">Anvil Labs</a></div></div>
  <meta itemprop="jobLocation" content="Lisbon, Portugal">
  <meta itemprop="datePosted" content="2024-05-08">
</div>
<div class="job-list-item">
  <h4><a href="https://example.com/apply"><div><div>Core Developer</div></div></a></h4>
  <div><div><a href="/companies/chain">ChainCo</a></div></div>
  <meta itemprop="datePosted" content="2024-05-09">
</div>
</body></html>`

func TestTalentBoardScrape(t *testing.T) {
	url := SolanaJobsURL + "?filter=" + softwareFilter
	g := &stubGetter{pages: map[string]string{url: talentFixture}}

	board := newTalentBoard(SolanaJobsURL)
	jobs, err := board.Scrape(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Protocol Engineer", jobs[0].Title)
	assert.Equal(t, "Anvil Labs", jobs[0].Company)
	assert.Equal(t, "Lisbon, Portugal", jobs[0].Location)
	assert.Equal(t, SolanaJobsURL+"/jobs/4010", jobs[0].Apply)
	assert.Equal(t, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), jobs[0].DatePosted)

	// absolute apply links are kept as-is
	assert.Equal(t, "https://example.com/apply", jobs[1].Apply)
	assert.Equal(t, "", jobs[1].Location)
}

func TestDateFromAge(t *testing.T) {
	now := time.Date(2024, 5, 15, 18, 30, 0, 0, time.UTC)
	day := now.Truncate(24 * time.Hour)

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"today", day},
		{"5h", day},
		{"2d", day.AddDate(0, 0, -2)},
		{"3w", day.AddDate(0, 0, -21)},
		{"1m", day.AddDate(0, -1, 0)},
		{"", day},
		{"recently", day},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, dateFromAge(tc.raw, now), tc.raw)
	}
}

func TestPathFromOnclick(t *testing.T) {
	assert.Equal(t, "/jobs/1", pathFromOnclick("window.location.href='/jobs/1'"))
	assert.Equal(t, "", pathFromOnclick("return false"))
	assert.Equal(t, "", pathFromOnclick("broken('"))
}
