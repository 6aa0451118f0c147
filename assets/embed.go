package assets

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
)

// SentimentLabelsTxt lists the categories the default text pipeline emits, one per line.
//
//go:embed sentiment_labels.txt
var SentimentLabelsTxt []byte

// SentimentLabels parses the embedded label list, skipping blanks and # comments.
func SentimentLabels() []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(SentimentLabelsTxt))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
