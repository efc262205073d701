// Package panel renders the recorder's state for the host developer-tools
// surface: a compact tab label and a detailed HTML report.
package panel

import (
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"

	"csob_gateway/internal/diagnostics"
	"csob_gateway/internal/domain/entities"
)

const panelTitle = "Payment gateway"

// Panel is a read-only view over one Recorder. Rendering never fails;
// a missing configuration degrades to a warning block instead of
// aborting the report.
type Panel struct {
	rec *diagnostics.Recorder
}

func New(rec *diagnostics.Recorder) *Panel {
	return &Panel{rec: rec}
}

// RenderSummary produces the tab label: icon, call count and, when any
// call failed, an inline error count.
func (p *Panel) RenderSummary() string {
	total, errs := p.rec.SummaryCounts()

	var b strings.Builder
	b.WriteString(`<span title="` + panelTitle + `">`)
	b.WriteString(`<img src="` + TabIcon + `" alt="" /> `)
	b.WriteString(plural(total, "request"))
	if errs > 0 {
		b.WriteString(" (" + plural(errs, "error") + ")")
	}
	b.WriteString(`</span>`)
	return b.String()
}

// RenderDetail produces the full report: header, configuration snapshot
// (or a warning when none is registered) and one section per recorded
// call in first-seen order.
func (p *Panel) RenderDetail() string {
	total, _ := p.rec.SummaryCounts()
	entries := p.rec.Entries()

	var b strings.Builder
	b.WriteString("<div class=\"gw-panel\">\n")
	b.WriteString("<h1>" + html.EscapeString(panelTitle) + ": " + plural(total, "request") + "</h1>\n")

	if cfg, ok := p.rec.ActiveConfig(); ok {
		writeConfigSnapshot(&b, cfg)
	} else {
		b.WriteString("<p class=\"gw-warning\">Warning: no gateway configuration could be loaded.</p>\n")
	}

	for i, e := range entries {
		b.WriteString("<h2>Call #" + strconv.Itoa(i+1))
		if e.Failed() {
			b.WriteString(" <span class=\"gw-error\">error</span>")
		}
		b.WriteString("</h2>\n")

		writePayloadTable(&b, "Request", e.Request)
		if e.Failed() {
			b.WriteString("<p class=\"gw-no-response\"><i>no response</i></p>\n")
		} else {
			writePayloadTable(&b, "Response", e.Response)
		}
	}

	b.WriteString("</div>")
	return b.String()
}

func writeConfigSnapshot(b *strings.Builder, cfg entities.MerchantConfig) {
	password := "(none)"
	if cfg.HasKeyPassword() {
		password = "••••••"
	}

	b.WriteString("<h2>Configuration</h2>\n<table class=\"gw-config\">\n")
	writeRow(b, "merchantId", cfg.MerchantID)
	writeRow(b, "shopName", cfg.ShopName)
	writeRow(b, "apiUrl", cfg.APIURL)
	writeRow(b, "returnUrl", cfg.ReturnURL)
	writeRow(b, "returnMethod", string(cfg.ReturnMethod))
	writeRow(b, "closePayment", strconv.FormatBool(cfg.ClosePayment))
	writeRow(b, "privateKeyPath", cfg.PrivateKeyPath)
	writeRow(b, "privateKeyPassword", password)
	writeRow(b, "bankPublicKeyPath", cfg.BankPublicKeyPath)
	b.WriteString("</table>\n")
}

func writePayloadTable(b *strings.Builder, caption string, payload diagnostics.Payload) {
	b.WriteString("<h3>" + caption + "</h3>\n")
	if len(payload) == 0 {
		b.WriteString("<p><i>empty</i></p>\n")
		return
	}
	b.WriteString("<table class=\"gw-payload\">\n")
	for _, f := range payload {
		writeRow(b, f.Key, renderValue(f.Value))
	}
	b.WriteString("</table>\n")
}

func writeRow(b *strings.Builder, key, value string) {
	b.WriteString("<tr><th>" + html.EscapeString(key) + "</th><td>" + html.EscapeString(value) + "</td></tr>\n")
}

func renderValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case json.Number:
		return t.String()
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
