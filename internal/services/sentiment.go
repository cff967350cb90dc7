package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

// SentimentClassifier tags model output as positive or not.
// Implementations are heuristics over the text, not a property of the model.
type SentimentClassifier interface {
	IsPositive(text string) bool
}

// KeywordClassifier reports text as positive when it contains the word
// "positive" in any case. It matches inside other words too ("positively").
type KeywordClassifier struct{}

func (KeywordClassifier) IsPositive(text string) bool {
	return strings.Contains(strings.ToLower(text), "positive")
}

// VaderPositiveThreshold is the compound score at or above which text is positive.
const VaderPositiveThreshold = 0.20

var (
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
	mdLinkPattern   = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareLinkPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// VaderClassifier scores the markdown-stripped text with VADER.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (vc *VaderClassifier) IsPositive(text string) bool {
	return vc.Score(text) >= VaderPositiveThreshold
}

// Score returns the VADER compound score in [-1, 1].
func (vc *VaderClassifier) Score(text string) float64 {
	return vc.analyzer.PolarityScores(markdownToText(text)).Compound
}

// markdownToText flattens model markdown into plain words for scoring.
func markdownToText(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	html := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(html), " ")
	plain = bareLinkPattern.ReplaceAllString(plain, "")
	return strings.Join(strings.Fields(plain), " ")
}

// NewSentimentClassifier picks a classifier by configured name.
func NewSentimentClassifier(name string) (SentimentClassifier, error) {
	switch name {
	case "", "keyword":
		return KeywordClassifier{}, nil
	case "vader":
		return NewVaderClassifier(), nil
	default:
		return nil, fmt.Errorf("unknown sentiment classifier: %s", name)
	}
}
