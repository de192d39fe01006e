package schedule

import "go.uber.org/zap"

// ClampOrDefault normalizes a numeric argument: an unset value (0) falls back
// to def, an out-of-range value is pulled to the nearest bound. Arguments may
// originate from a language model, so nothing is ever rejected outright.
func ClampOrDefault(name string, v, min, max, def int) int {
	if v == 0 {
		return def
	}
	if v < min {
		zap.L().Debug("argument clamped to lower bound", zap.String("name", name), zap.Int("value", v), zap.Int("min", min))
		return min
	}
	if v > max {
		zap.L().Debug("argument clamped to upper bound", zap.String("name", name), zap.Int("value", v), zap.Int("max", max))
		return max
	}
	return v
}
