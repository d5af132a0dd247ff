package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"boost-engine/internal/core/domain"
)

// createBoostRequest is the body the payment collaborator posts once a
// purchase has settled. Amounts may be JSON numbers or strings.
type createBoostRequest struct {
	TargetType   string          `json:"targetType"`
	TargetID     string          `json:"targetId"`
	OwnerID      string          `json:"ownerId"`
	PaymentID    string          `json:"paymentId"`
	MaxClicks    int64           `json:"maxClicks"`
	CostPerClick decimal.Decimal `json:"costPerClick"`
	TotalBudget  decimal.Decimal `json:"totalBudget"`
	Priority     int             `json:"priority"`
	EndDate      *time.Time      `json:"endDate,omitempty"`
}

func (req createBoostRequest) admission() (domain.Admission, error) {
	tt, err := domain.ParseTargetType(req.TargetType)
	if err != nil {
		return domain.Admission{}, err
	}
	return domain.Admission{
		Target:    domain.Target{Type: tt, ID: req.TargetID},
		OwnerID:   req.OwnerID,
		PaymentID: req.PaymentID,
		Config: domain.BoostConfig{
			MaxClicks:    req.MaxClicks,
			CostPerClick: req.CostPerClick,
			TotalBudget:  req.TotalBudget,
		},
		Priority: req.Priority,
		EndDate:  req.EndDate,
	}, nil
}

type clickRequest struct {
	Source string `json:"source"`
}

// clickMeta reads the optional body and the client details of a click. An
// empty body is allowed.
func clickMeta(r *http.Request) (domain.ClickMeta, error) {
	var req clickRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return domain.ClickMeta{}, fmt.Errorf("%w: invalid JSON", domain.ErrInvalidArgument)
		}
	}
	return domain.ClickMeta{
		Source:    req.Source,
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
	}, nil
}

// clientIP returns the caller address set by the RealIP middleware, without
// a port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// pageParams reads page and page_size, defaulting to the first page of
// defaultSize items.
func pageParams(r *http.Request, defaultSize int) (page, size int, err error) {
	q := r.URL.Query()
	page, size = 1, defaultSize
	if v := q.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("%w: invalid page", domain.ErrInvalidArgument)
		}
	}
	if v := q.Get("page_size"); v != "" {
		if size, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("%w: invalid page_size", domain.ErrInvalidArgument)
		}
	}
	return page, size, nil
}

func operatorID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get("X-Operator-ID"))
	if id == "" {
		return "", fmt.Errorf("%w: X-Operator-ID header is required", domain.ErrInvalidArgument)
	}
	return id, nil
}
