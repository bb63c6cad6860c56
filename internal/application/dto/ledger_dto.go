package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// MoveLineRequest línea candidata de un movimiento.
type MoveLineRequest struct {
	SKU        string          `json:"sku"`
	Name       string          `json:"name,omitempty"` // nombre para stubs en compras
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	AddOnPrice decimal.Decimal `json:"add_on_price"`
	AddOnCost  decimal.Decimal `json:"add_on_cost"`
}

// CreatePurchaseRequest recepción de mercancía.
type CreatePurchaseRequest struct {
	ToID      string            `json:"to_id"`
	Lines     []MoveLineRequest `json:"lines"`
	Date      time.Time         `json:"date,omitempty"`
	Reference string            `json:"reference,omitempty"`
	Notes     string            `json:"notes,omitempty"`
}

// CreateTransferRequest traslado entre ubicaciones.
type CreateTransferRequest struct {
	FromID     string            `json:"from_id"`
	ToID       string            `json:"to_id"`
	CustomerID string            `json:"customer_id,omitempty"`
	Lines      []MoveLineRequest `json:"lines"`
	Date       time.Time         `json:"date,omitempty"`
	Reference  string            `json:"reference,omitempty"`
	Notes      string            `json:"notes,omitempty"`
}

// CreateB2BSaleRequest venta mayorista.
type CreateB2BSaleRequest struct {
	FromID    string            `json:"from_id"`
	ToID      string            `json:"to_id"`
	Lines     []MoveLineRequest `json:"lines"`
	Date      time.Time         `json:"date,omitempty"`
	Reference string            `json:"reference,omitempty"`
	Notes     string            `json:"notes,omitempty"`
}

// CreateAdjustRequest ajuste manual.
type CreateAdjustRequest struct {
	LocationID          string            `json:"location_id"`
	Direction           string            `json:"direction"` // in | out
	Lines               []MoveLineRequest `json:"lines"`
	AllowNegativeAdjust bool              `json:"allow_negative_adjust,omitempty"`
	Date                time.Time         `json:"date,omitempty"`
	Reference           string            `json:"reference,omitempty"`
	Notes               string            `json:"notes,omitempty"`
}

// POSSaleRequest venta de mostrador.
type POSSaleRequest struct {
	WarehouseID        string            `json:"warehouse_id"`
	Channel            string            `json:"channel,omitempty"`
	CustomerID         string            `json:"customer_id,omitempty"`
	Lines              []MoveLineRequest `json:"lines"`
	GiftSale           bool              `json:"gift_sale,omitempty"`
	AllowNegativeStock bool              `json:"allow_negative_stock,omitempty"`
	PaymentMethod      string            `json:"payment_method,omitempty"`
	Date               time.Time         `json:"date,omitempty"`
	Reference          string            `json:"reference,omitempty"`
	Notes              string            `json:"notes,omitempty"`
}

// WebSaleRequest despacho de pedido web.
type WebSaleRequest struct {
	WarehouseID string            `json:"warehouse_id"`
	CustomerID  string            `json:"customer_id,omitempty"`
	Lines       []MoveLineRequest `json:"lines"`
	Date        time.Time         `json:"date,omitempty"`
	Reference   string            `json:"reference,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}

// ReturnLineRequest línea de devolución.
type ReturnLineRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// CreateReturnRequest devolución conciliada contra una venta.
type CreateReturnRequest struct {
	SaleID string              `json:"sale_id"`
	Lines  []ReturnLineRequest `json:"lines"`
	Notes  string              `json:"notes,omitempty"`
	Date   time.Time           `json:"date,omitempty"`
}

// UpdateMoveRequest edición administrativa de un movimiento.
type UpdateMoveRequest struct {
	Reference     *string          `json:"reference,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Date          *time.Time       `json:"date,omitempty"`
	PaymentStatus *string          `json:"payment_status,omitempty"`
	PaidAmount    *decimal.Decimal `json:"paid_amount,omitempty"`
}

// MoveLineResponse línea serializada.
type MoveLineResponse struct {
	ID         string          `json:"id"`
	SKU        string          `json:"sku"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	AddOnPrice decimal.Decimal `json:"add_on_price"`
	AddOnCost  decimal.Decimal `json:"add_on_cost"`
}

// MoveResponse movimiento serializado con sus líneas.
type MoveResponse struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Channel       string             `json:"channel"`
	Date          time.Time          `json:"date"`
	FromID        *string            `json:"from_id,omitempty"`
	ToID          *string            `json:"to_id,omitempty"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	RelatedMoveID *string            `json:"related_move_id,omitempty"`
	Reference     string             `json:"reference,omitempty"`
	SeriesCode    *string            `json:"series_code,omitempty"`
	SeriesYear    *int               `json:"series_year,omitempty"`
	SeriesNumber  *int64             `json:"series_number,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	PaymentStatus string             `json:"payment_status"`
	PaidAmount    decimal.Decimal    `json:"paid_amount"`
	Total         decimal.Decimal    `json:"total"`
	Lines         []MoveLineResponse `json:"lines"`
}

// FromMove convierte la entidad a respuesta.
func FromMove(m *entity.StockMove) MoveResponse {
	lines := make([]MoveLineResponse, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, MoveLineResponse{
			ID:         l.ID,
			SKU:        l.SKU,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			UnitCost:   l.UnitCost,
			AddOnPrice: l.AddOnPrice,
			AddOnCost:  l.AddOnCost,
		})
	}
	return MoveResponse{
		ID:            m.ID,
		Type:          m.Type,
		Channel:       m.Channel,
		Date:          m.Date,
		FromID:        m.FromID,
		ToID:          m.ToID,
		CustomerID:    m.CustomerID,
		RelatedMoveID: m.RelatedMoveID,
		Reference:     m.Reference,
		SeriesCode:    m.SeriesCode,
		SeriesYear:    m.SeriesYear,
		SeriesNumber:  m.SeriesNumber,
		Notes:         m.Notes,
		PaymentStatus: m.PaymentStatus,
		PaidAmount:    m.PaidAmount,
		Total:         m.Total(),
		Lines:         lines,
	}
}

// StockItemResponse entrada del listado de stock.
type StockItemResponse struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ClosureResponse cierre de caja diario.
type ClosureResponse struct {
	Date        time.Time       `json:"date"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
	Tickets     int             `json:"tickets"`
	GiftTickets int             `json:"gift_tickets"`
	GrossTotal  decimal.Decimal `json:"gross_total"`
	PaidTotal   decimal.Decimal `json:"paid_total"`
}
