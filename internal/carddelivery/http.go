// Package carddelivery manages delivery layer of cards.
package carddelivery

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/okutan/card-vault/internal/domain"
	"github.com/okutan/card-vault/internal/middleware"
	"github.com/okutan/card-vault/pkg/datepkg"
	"github.com/okutan/card-vault/pkg/errorspkg"
	"github.com/okutan/card-vault/pkg/moneypkg"
	"github.com/okutan/card-vault/pkg/tokenpkg"
	"github.com/okutan/card-vault/pkg/web"
)

// Service provides service layer interface needed by card delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package carddelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateCardParams) (domain.Card, error)
	Get(ctx context.Context, id, owner string) (domain.Card, error)
	List(ctx context.Context, owner string) ([]domain.Card, error)
	Update(ctx context.Context, id, owner string, arg domain.UpdateCardParams) (domain.Card, error)
	Delete(ctx context.Context, id, owner string) error
	Summarize(ctx context.Context, owner string) (domain.CardSummary, error)
}

// Handler facilitates card delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns card handler.
func NewHandler(cs Service) *Handler {
	return &Handler{service: cs}
}

type cardRequest struct {
	BankName       string `json:"bank_name" binding:"required"`
	CardName       string `json:"card_name" binding:"required"`
	CardNumber     string `json:"card_number" binding:"required,cardnumber"`
	HolderName     string `json:"holder_name" binding:"required"`
	TotalLimit     string `json:"total_limit" binding:"required"`
	AvailableLimit string `json:"available_limit" binding:"required"`
	StatementDate  string `json:"statement_date" binding:"required,carddate"`
	DueDate        string `json:"due_date" binding:"required,carddate"`
}

type cardResponse struct {
	ID             string          `json:"id"`
	BankName       string          `json:"bank_name"`
	CardName       string          `json:"card_name"`
	CardNumber     string          `json:"card_number"`
	HolderName     string          `json:"holder_name"`
	TotalLimit     decimal.Decimal `json:"total_limit"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
	StatementDate  string          `json:"statement_date"`
	DueDate        string          `json:"due_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MaskCardNumber hides all but the last four digits of a card number.
func MaskCardNumber(n string) string {
	if len(n) <= 4 {
		return n
	}

	return "**** **** **** " + n[len(n)-4:]
}

func newCardResponse(c domain.Card, masked bool) cardResponse {
	number := c.CardNumber
	if masked {
		number = MaskCardNumber(number)
	}

	return cardResponse{
		ID:             c.ID,
		BankName:       c.BankName,
		CardName:       c.CardName,
		CardNumber:     number,
		HolderName:     c.HolderName,
		TotalLimit:     c.TotalLimit,
		AvailableLimit: c.AvailableLimit,
		StatementDate:  datepkg.Format(c.StatementDate),
		DueDate:        datepkg.Format(c.DueDate),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func bindError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())
	l.Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

func serviceError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrCardNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrCardOwnerMismatch:
		gctx.JSON(http.StatusUnauthorized, web.Error(err))
	case domain.ErrOwnerNotFound,
		domain.ErrAvailableLimitTooHigh,
		domain.ErrNegativeLimit:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

// parseFields converts the validated raw request fields into their domain
// representations. Date fields already passed the carddate validator.
func (r cardRequest) parseFields(gctx *gin.Context) (total, available decimal.Decimal, statement, due time.Time, ok bool) {
	var err error

	if total, err = moneypkg.Parse(r.TotalLimit); err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	if available, err = moneypkg.Parse(r.AvailableLimit); err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	if statement, err = datepkg.Parse(r.StatementDate); err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	if due, err = datepkg.Parse(r.DueDate); err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	return total, available, statement, due, true
}

func authUsername(gctx *gin.Context) string {
	return gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload).Username
}

type data struct {
	Card cardResponse `json:"card"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to create a card.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req cardRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	total, available, statement, due, ok := req.parseFields(gctx)
	if !ok {
		return
	}

	arg := domain.CreateCardParams{
		Owner:          authUsername(gctx),
		BankName:       req.BankName,
		CardName:       req.CardName,
		CardNumber:     strings.TrimSpace(req.CardNumber),
		HolderName:     req.HolderName,
		TotalLimit:     total,
		AvailableLimit: available,
		StatementDate:  statement,
		DueDate:        due,
	}

	card, err := h.service.Create(ctx, arg)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newCardResponse(card, false)}})
}

type idRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles http request to get a single card.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	card, err := h.service.Get(ctx, req.ID, authUsername(gctx))
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newCardResponse(card, false)}})
}

type dataCards struct {
	Cards []cardResponse `json:"cards"`
}
type responseCards struct {
	Data dataCards `json:"data,omitempty"`
}

// List handles http request to list all cards of the requesting user.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	cards, err := h.service.List(ctx, authUsername(gctx))
	if err != nil {
		serviceError(gctx, err)
		return
	}

	items := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		items = append(items, newCardResponse(c, true))
	}

	gctx.JSON(http.StatusOK, responseCards{Data: dataCards{items}})
}

// Update handles http request to update a card.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req cardRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	total, available, statement, due, ok := req.parseFields(gctx)
	if !ok {
		return
	}

	arg := domain.UpdateCardParams{
		BankName:       req.BankName,
		CardName:       req.CardName,
		CardNumber:     strings.TrimSpace(req.CardNumber),
		HolderName:     req.HolderName,
		TotalLimit:     total,
		AvailableLimit: available,
		StatementDate:  statement,
		DueDate:        due,
	}

	card, err := h.service.Update(ctx, uri.ID, authUsername(gctx), arg)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newCardResponse(card, false)}})
}

// Delete handles http request to delete a card.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	if err := h.service.Delete(ctx, req.ID, authUsername(gctx)); err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

type dataSummary struct {
	Summary domain.CardSummary `json:"summary"`
}
type responseSummary struct {
	Data dataSummary `json:"data,omitempty"`
}

// Summary handles http request to get aggregate limit totals.
func (h *Handler) Summary(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	summary, err := h.service.Summarize(ctx, authUsername(gctx))
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseSummary{Data: dataSummary{summary}})
}
