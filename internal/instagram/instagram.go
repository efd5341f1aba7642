// Package instagram provides audience statistics for an Instagram handle.
// There is no real Instagram integration; stats are generated, but they are
// deterministic per username so repeated lookups and cached responses agree.
package instagram

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Stats describes the audience of a single Instagram account.
type Stats struct {
	Username       string       `json:"username"`
	Followers      int          `json:"followers"`
	Following      int          `json:"following"`
	Posts          int          `json:"posts"`
	EngagementRate float64      `json:"engagementRate"`
	AvgLikes       int          `json:"avgLikes"`
	AvgComments    int          `json:"avgComments"`
	Demographics   Demographics `json:"demographics"`
	TopPosts       []Post       `json:"topPosts"`
}

// Demographics summarizes the account's audience.
type Demographics struct {
	AgeRange     string `json:"ageRange"`
	GenderFemale int    `json:"genderFemale"`
	GenderMale   int    `json:"genderMale"`
	TopCountries string `json:"topCountries"`
}

// Post is one of the account's best-performing posts.
type Post struct {
	Caption  string `json:"caption"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	ImageURL string `json:"imageUrl"`
}

// Provider generates stats for usernames.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

var ageRanges = []string{"13-17", "18-24", "25-34", "35-44", "45-54"}

var countrySets = []string{
	"United States, United Kingdom, Canada",
	"Germany, France, Netherlands",
	"Brazil, Mexico, Argentina",
	"India, Indonesia, Philippines",
	"Japan, South Korea, Australia",
}

// seedFor maps a username to a stable seed. Case and surrounding whitespace
// are ignored so "JaneDoe" and "janedoe " resolve to the same account.
func seedFor(username string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(username))))
	return int64(h.Sum64() & math.MaxInt64)
}

// Fetch returns stats for the given username. The same username always
// produces the same stats.
func (p *Provider) Fetch(username string) *Stats {
	f := gofakeit.New(seedFor(username))

	followers := f.Number(1_000, 2_500_000)
	engagement := f.Float64Range(0.8, 9.5)
	avgLikes := int(float64(followers) * engagement / 100)
	avgComments := avgLikes / f.Number(20, 60)

	female := f.Number(20, 80)

	topPosts := make([]Post, 3)
	for i := range topPosts {
		likes := avgLikes + f.Number(0, avgLikes)
		topPosts[i] = Post{
			Caption:  f.Sentence(f.Number(4, 10)),
			Likes:    likes,
			Comments: likes / f.Number(25, 50),
			ImageURL: f.ImageURL(640, 640),
		}
	}

	return &Stats{
		Username:       strings.ToLower(strings.TrimSpace(username)),
		Followers:      followers,
		Following:      f.Number(100, 5_000),
		Posts:          f.Number(20, 3_000),
		EngagementRate: math.Round(engagement*100) / 100,
		AvgLikes:       avgLikes,
		AvgComments:    avgComments,
		Demographics: Demographics{
			AgeRange:     ageRanges[f.Number(0, len(ageRanges)-1)],
			GenderFemale: female,
			GenderMale:   100 - female,
			TopCountries: countrySets[f.Number(0, len(countrySets)-1)],
		},
		TopPosts: topPosts,
	}
}
