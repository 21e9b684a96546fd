package brands

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list brands failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách thương hiệu")
		return
	}
	if brands == nil {
		brands = []BrandWithCount{}
	}
	httpx.JSON(w, http.StatusOK, brands)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	brand, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get brand failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, brand)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBrandRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Tên thương hiệu là bắt buộc")
		return
	}

	brand, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create brand failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, brand)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateBrandRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}

	brand, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.logger.Error("update brand failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, brand)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete brand failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Đã xóa thương hiệu thành công"})
}
