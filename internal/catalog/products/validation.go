package products

import (
	"strings"

	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

func validateCreate(req CreateProductRequest) error {
	if strings.TrimSpace(req.Name) == "" || req.Price == nil {
		return httpx.Validation("Tên sản phẩm và giá bán là bắt buộc")
	}
	if *req.Price < 0 {
		return httpx.Validation("Giá bán không được âm")
	}
	if req.Cost != nil && *req.Cost < 0 {
		return httpx.Validation("Giá vốn không được âm")
	}
	if req.Stock != nil && *req.Stock < 0 {
		return httpx.Validation("Tồn kho không được âm")
	}
	return nil
}

func validateUpdate(req UpdateProductRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return httpx.Validation("Tên sản phẩm là bắt buộc")
	}
	if req.Price != nil && *req.Price < 0 {
		return httpx.Validation("Giá bán không được âm")
	}
	if req.Cost != nil && *req.Cost < 0 {
		return httpx.Validation("Giá vốn không được âm")
	}
	if req.Stock != nil && *req.Stock < 0 {
		return httpx.Validation("Tồn kho không được âm")
	}
	return nil
}
