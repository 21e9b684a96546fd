package brands

import (
	"strings"

	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return httpx.Validation("Tên thương hiệu là bắt buộc")
	}
	return nil
}
