package views

import (
	"fmt"
	"strings"

	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/tui/ui"
	"github.com/rivo/tview"
)

// RecordDetail shows every field of one record next to a QR code of its
// web address.
type RecordDetail struct {
	*tview.Flex
	theme  *ui.Theme
	fields *tview.TextView
	qr     *tview.TextView
	title  string
}

// NewRecordDetail creates an empty detail view.
func NewRecordDetail(theme *ui.Theme) *RecordDetail {
	fields := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	fields.SetBorder(true)
	fields.SetBorderColor(theme.BorderColor)
	fields.SetBackgroundColor(theme.BgColor)
	fields.SetTextColor(theme.FgColor)
	fields.SetTitleColor(theme.TitleColor)

	qr := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	qr.SetBorder(true)
	qr.SetBorderColor(theme.BorderColor)
	qr.SetBackgroundColor(theme.BgColor)
	qr.SetTextColor(tview.Styles.PrimaryTextColor)
	qr.SetTitle(" Lien ")
	qr.SetTitleColor(theme.TitleColor)

	flex := tview.NewFlex().
		AddItem(fields, 0, 3, true).
		AddItem(qr, 0, 2, false)

	return &RecordDetail{
		Flex:   flex,
		theme:  theme,
		fields: fields,
		qr:     qr,
	}
}

// Name implements ui.Component.
func (rd *RecordDetail) Name() string { return rd.title }

// Update renders the fields of row. url may be empty when no link can be
// built; urlErr then explains why.
func (rd *RecordDetail) Update(res catalog.Resource, row catalog.Row, fields []catalog.DetailField, url string, urlErr error) {
	rd.title = row.Name
	rd.fields.Clear()
	rd.fields.SetTitle(fmt.Sprintf(" %s · %s ", res.Title(), tview.Escape(row.Name)))
	rd.fields.SetTitleColor(rd.theme.ModuleColor(res.Module()))
	_, _ = fmt.Fprint(rd.fields, renderFields(rd.theme, fields))
	rd.fields.ScrollToBeginning()

	rd.qr.Clear()
	if urlErr != nil {
		_, _ = fmt.Fprintf(rd.qr, "\n[%s]%s[-]", ui.Tag(rd.theme.FlashWarnColor), tview.Escape(urlErr.Error()))
		return
	}
	code, err := renderQR(url)
	if err != nil {
		_, _ = fmt.Fprintf(rd.qr, "\n[%s]QR indisponible : %s[-]", ui.Tag(rd.theme.FlashErrColor), tview.Escape(err.Error()))
		return
	}
	_, _ = fmt.Fprintf(rd.qr, "\n%s\n[%s]%s[-]", code, ui.Tag(rd.theme.CounterColor), tview.Escape(url))
}

func renderFields(theme *ui.Theme, fields []catalog.DetailField) string {
	width := 0
	for _, f := range fields {
		if n := len([]rune(f.Label)); n > width {
			width = n
		}
	}
	fg := ui.Tag(theme.FgColor)
	ct := ui.Tag(theme.CounterColor)

	var b strings.Builder
	b.WriteString("\n")
	for _, f := range fields {
		value := f.Value
		if value == "" {
			value = "-"
		}
		pad := strings.Repeat(" ", width-len([]rune(f.Label)))
		fmt.Fprintf(&b, " [%s::b]%s:[-:-:-]%s  [%s]%s[-]\n", fg, tview.Escape(f.Label), pad, ct, tview.Escape(value))
	}
	return b.String()
}
