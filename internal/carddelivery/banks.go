package carddelivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PopularBanks is the catalog of banks offered by the new card form.
var PopularBanks = []string{
	"Garanti BBVA",
	"İş Bankası",
	"Akbank",
	"Yapı Kredi",
	"Ziraat Bankası",
	"Halkbank",
	"Vakıfbank",
	"QNB Finansbank",
	"ING Bank",
	"HSBC",
	"Denizbank",
	"TEB",
	"Şekerbank",
	"Anadolubank",
	"Odeabank",
	"Albaraka Türk",
	"Kuveyt Türk",
	"Vakıf Katılım",
	"Ziraat Katılım",
	"Türkiye Finans",
}

type dataBanks struct {
	Banks []string `json:"banks"`
}
type responseBanks struct {
	Data dataBanks `json:"data,omitempty"`
}

// ListBanks handles http request to list the selectable bank names.
func (h *Handler) ListBanks(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, responseBanks{Data: dataBanks{PopularBanks}})
}
