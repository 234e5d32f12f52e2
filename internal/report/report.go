package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-pricer/internal/portfolio"
)

const priceDecimals = 4

func WriteJSON(quotes []portfolio.Quote, outdir string) error {
	b, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "quotes.json"), b, 0644)
}

// WriteCSV writes one row per quote to quotes.csv, prices rounded to four decimals.
func WriteCSV(quotes []portfolio.Quote, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "quotes.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	headers := []string{"id", "option_type", "price", "error"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, q := range quotes {
		price := ""
		if q.OK() {
			price = decimal.NewFromFloat(q.Price).StringFixed(priceDecimals)
		}
		if err := w.Write([]string{q.ID, q.OptionType, price, q.Error}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
