package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// copyOption renders ids, instants and decimals as strings so amounts keep their precision on the wire.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).UTC().Format(time.RFC3339), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).String(), nil
			},
		},
	},
}

func copyInto(dst, src any) {
	// Converters cover every field type used by the response DTOs.
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic(err)
	}
}
