package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/sigcore/deviceprint/geo"
)

// MarkdownWriter outputs composite reports in Markdown format, for
// documentation and sharing.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(c *Composite) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Device Fingerprint Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Fingerprint", "`" + c.Hash + "`"},
			{"Confidence", string(c.ConfidenceAssessment.System.Level)},
			{"Rating", c.ConfidenceAssessment.System.Rating},
			{"Reliability", c.ConfidenceAssessment.System.Reliability},
			{"Score", strconv.FormatFloat(c.ConfidenceAssessment.System.Score, 'f', 2, 64)},
		},
	})
	md.PlainText("")

	w.writeFactors(md, "System Factors", c.ConfidenceAssessment.System.Factors)
	if combined := c.ConfidenceAssessment.Combined; combined != nil {
		md.H2("Combined Assessment")
		md.PlainText("")
		md.PlainTextf("Score %.2f (%s, %s)", combined.Score, combined.Level, combined.Reliability)
		md.PlainText("")
		w.writeFactors(md, "Network Factors", combined.Factors)
	}

	w.writeGeolocation(md, c.Geolocation)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by deviceprint*")

	return md.Build()
}

func (w *MarkdownWriter) writeFactors(md *markdown.Markdown, title string, factors []string) {
	md.H2(title)
	md.PlainText("")
	if len(factors) == 0 {
		md.PlainText("None.")
		md.PlainText("")
		return
	}
	md.BulletList(factors...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeGeolocation(md *markdown.Markdown, g *geo.Projection) {
	md.H2("Geolocation")
	md.PlainText("")
	if g == nil {
		md.PlainText("No geolocation result available.")
		md.PlainText("")
		return
	}

	vpn := "not detected"
	if g.VPNStatus.Status {
		vpn = "detected"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"IP", g.IP},
			{"City", g.City},
			{"Region", g.Region.Name},
			{"Country", g.Country.Name},
			{"Continent", g.Continent.Name},
			{"Time zone", g.Location.TimeZone},
			{"VPN", fmt.Sprintf("%s (probability %.2f)", vpn, g.VPNStatus.Probability)},
		},
	})
	md.PlainText("")
}
