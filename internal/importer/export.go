package importer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/crosayo/cardstock/internal/model"
)

// exportHeaders is the fixed export header row, localized to match the
// catalogs staff exchange with suppliers.
var exportHeaders = []string{"ID", "名前", "カードID", "レアリティ", "在庫数", "カテゴリ"}

// WriteExport emits the catalog as UTF-8 CSV with a byte-order mark, one row
// per entry in the order given (callers pass id-sorted items).
func WriteExport(w io.Writer, items []model.Item) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeaders); err != nil {
		return err
	}
	for _, item := range items {
		row := []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Name,
			item.CardIDValue(),
			item.Rare,
			strconv.Itoa(item.Stock),
			item.Category,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
