package response

import (
	"time"

	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AvailabilityResponse struct {
	Kind      string     `json:"kind"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	Quantity  int        `json:"quantity"`
	Available bool       `json:"available"`
	Remaining int        `json:"remaining"`
	Capacity  int        `json:"capacity"`
	Reason    string     `json:"reason"`
	Message   string     `json:"message"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var res AvailabilityResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "map availability response")
	}
	return &res, nil
}
