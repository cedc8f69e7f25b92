package dashboard

import (
	"time"

	"github.com/pos/backoffice/internal/domain/datatable"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Translator resolves request languages to printers and table labels
type Translator interface {
	Resolve(lang, acceptLanguage string) language.Tag
	Printer(tag language.Tag) *message.Printer
	Labels(tag language.Tag) datatable.LabelFunc
	Direction(tag language.Tag) datatable.Direction
}

// dateTimeLayout is how timestamps are shown in cells
const dateTimeLayout = "2006-01-02 15:04"

// renderContext carries everything language dependent for one projection
type renderContext struct {
	tag       language.Tag
	printer   *message.Printer
	labels    datatable.LabelFunc
	direction datatable.Direction
}

func newRenderContext(t Translator, tag language.Tag) renderContext {
	return renderContext{
		tag:       tag,
		printer:   t.Printer(tag),
		labels:    t.Labels(tag),
		direction: t.Direction(tag),
	}
}

func (rc renderContext) text(key string) string {
	return rc.printer.Sprintf(key)
}

func (rc renderContext) money(d decimal.Decimal) string {
	return rc.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

func (rc renderContext) quantity(d decimal.Decimal) string {
	return rc.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}

func (rc renderContext) when(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

func (rc renderContext) whenPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return rc.when(*t)
}
