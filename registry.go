package fabrikate

import (
	"math/big"
	"net/url"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	fab "github.com/antithesishq/fabrikate-go/fabricator"
)

// registerDefaults binds one fabricator per supported type to f's source. The configuration
// has been validated, so the fallible constructors cannot fail here.
func registerDefaults(f *Fabrikate) {
	src, cfg := f.src, f.config

	Register[bool](f, fab.NewBool(src))
	Register[int](f, fab.NewInt(src))
	Register[int32](f, fab.NewInt32(src))
	Register[int64](f, fab.NewInt64(src))
	Register[uint64](f, fab.NewUint64(src))
	Register[float32](f, fab.NewFloat32(src))
	Register[float64](f, fab.NewFloat64(src))
	Register[byte](f, fab.NewByte(src))
	Register[*big.Int](f, fab.Must(fab.NewBigInt(src, cfg.BigIntBits)))
	Register[decimal.Decimal](f, fab.Must(fab.NewBigDecimal(src, cfg.BigIntBits)))

	Register[string](f, fab.Must(fab.NewString(src, fab.WithLength(cfg.StringMinLength, cfg.StringMaxLength))))
	Register[[]byte](f, fab.Must(fab.NewBytes(src, cfg.BytesSize)))

	Register[time.Time](f, fab.NewInstant(src))
	Register[time.Duration](f, fab.NewDuration(src))
	Register[civil.Date](f, fab.NewLocalDate(src))
	Register[civil.Time](f, fab.NewLocalTime(src))
	Register[civil.DateTime](f, fab.NewLocalDateTime(src))
	Register[fab.YearMonth](f, fab.NewYearMonth(src))
	Register[fab.OffsetTime](f, fab.NewOffsetTime(src))

	Register[uuid.UUID](f, fab.NewUUID(src))
	urls := fab.NewURL(src)
	Register[*url.URL](f, urls)
	Register[url.URL](f, fab.Func[url.URL](func() url.URL {
		return *urls.Fabricate()
	}))

	Register[any](f, fab.NewAny())
}
