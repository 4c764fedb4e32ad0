package parser

import "github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"

// InferColumnType derives a column dtype from its cell kinds.
//
// Integer columns with gaps widen to float64, all-missing columns are
// float64, and a column without rows is object. Any mix that is not purely
// numeric, boolean or datetime is object.
func InferColumnType(values []models.Value) models.ColumnType {
	if len(values) == 0 {
		return models.TypeObject
	}

	var missing, ints, floats, bools, dates, texts int
	for _, v := range values {
		switch v.Kind {
		case models.KindMissing:
			missing++
		case models.KindInt:
			ints++
		case models.KindFloat:
			floats++
		case models.KindBool:
			bools++
		case models.KindDateTime:
			dates++
		default:
			texts++
		}
	}

	numbers := ints + floats
	switch {
	case missing == len(values):
		return models.TypeFloat
	case texts > 0:
		return models.TypeObject
	case numbers == len(values)-missing:
		if floats > 0 || missing > 0 {
			return models.TypeFloat
		}
		return models.TypeInt
	case bools == len(values):
		return models.TypeBool
	case dates == len(values)-missing:
		return models.TypeDateTime
	default:
		return models.TypeObject
	}
}
