package storage

import (
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// ReceiptQR renders the link a customer scans to review their order.
type ReceiptQR struct {
	BaseURL string
	Size    int
}

func NewReceiptQR(baseURL string) *ReceiptQR {
	return &ReceiptQR{BaseURL: strings.TrimRight(baseURL, "/"), Size: 256}
}

func (g *ReceiptQR) Link(orderNumber string) string {
	return g.BaseURL + "/reviews?order=" + url.QueryEscape(orderNumber)
}

func (g *ReceiptQR) Generate(orderNumber string) ([]byte, error) {
	return qrcode.Encode(g.Link(orderNumber), qrcode.Medium, g.Size)
}
