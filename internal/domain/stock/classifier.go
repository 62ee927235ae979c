package stock

// Tier clasifica un nivel de stock para la severidad de los mensajes del
// escáner y los contadores del dashboard.
type Tier string

const (
	TierRupture  Tier = "rupture"  // sin existencias
	TierCritical Tier = "critical" // 1..umbral crítico
	TierLow      Tier = "low"      // umbral crítico+1..umbral bajo
	TierOk       Tier = "ok"
)

// Umbrales por defecto, consistentes en todas las variantes del front del taller.
const (
	DefaultCriticalThreshold = 2
	DefaultLowThreshold      = 5
)

// Classifier mapea un stock a su Tier. Los umbrales son parametrizables
// (vienen de config) pero el contrato es el de los defaults.
type Classifier struct {
	critical int
	low      int
}

// NewClassifier construye el clasificador. Umbrales <= 0 o incoherentes
// (low <= critical) caen a los defaults.
func NewClassifier(critical, low int) Classifier {
	if critical <= 0 {
		critical = DefaultCriticalThreshold
	}
	if low <= critical {
		low = DefaultLowThreshold
	}
	return Classifier{critical: critical, low: low}
}

// Classify mapea el contador a su tier: 0 -> rupture, (0,critical] -> critical,
// (critical,low] -> low, > low -> ok.
func (c Classifier) Classify(stock int) Tier {
	switch {
	case stock <= 0:
		return TierRupture
	case stock <= c.critical:
		return TierCritical
	case stock <= c.low:
		return TierLow
	default:
		return TierOk
	}
}

// Classify clasifica con los umbrales por defecto (2 y 5).
func Classify(stock int) Tier {
	return NewClassifier(DefaultCriticalThreshold, DefaultLowThreshold).Classify(stock)
}
