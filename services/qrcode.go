package services

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(tableID uint) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(tableID uint) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	content := fmt.Sprintf("%s/api/v1/bills?dining_table_id=%d", strings.TrimRight(g.BaseURL, "/"), tableID)
	return qrcode.Encode(content, qrcode.Medium, size)
}
