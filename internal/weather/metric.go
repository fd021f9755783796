package weather

import "fmt"

// Metric identifies one selectable weather quantity. Its string value is
// the Open-Meteo query/field identifier; FieldName returns the stable
// name used in normalized records.
type Metric string

const (
	MetricTemperature         Metric = "temperature_2m"
	MetricPrecipitation       Metric = "precipitation"
	MetricRain                Metric = "rain"
	MetricWindSpeed           Metric = "wind_speed_10m"
	MetricWindDirection       Metric = "wind_direction_10m"
	MetricApparentTemperature Metric = "apparent_temperature"
	MetricIsDay               Metric = "is_day"
	MetricRelativeHumidity    Metric = "relative_humidity_2m"
	MetricShowers             Metric = "showers"
	MetricWindGusts           Metric = "wind_gusts_10m"
	MetricSnowfall            Metric = "snowfall"
	MetricWeatherCode         Metric = "weather_code"
	MetricSurfacePressure     Metric = "surface_pressure"
	MetricPressureMSL         Metric = "pressure_msl"
	MetricCloudCover          Metric = "cloud_cover"
)

// allMetrics is the canonical ordering of the full schema. Records carry
// every entry; printing and normalization iterate in this order.
var allMetrics = []Metric{
	MetricTemperature,
	MetricPrecipitation,
	MetricRain,
	MetricWindSpeed,
	MetricWindDirection,
	MetricApparentTemperature,
	MetricIsDay,
	MetricRelativeHumidity,
	MetricShowers,
	MetricWindGusts,
	MetricSnowfall,
	MetricWeatherCode,
	MetricSurfacePressure,
	MetricPressureMSL,
	MetricCloudCover,
}

// fieldNames maps each metric to the normalized field name exposed in
// records. Provider identifiers never appear in output.
var fieldNames = map[Metric]string{
	MetricTemperature:         "temperature",
	MetricPrecipitation:       "precipitation",
	MetricRain:                "rain",
	MetricWindSpeed:           "windspeed",
	MetricWindDirection:       "winddirection",
	MetricApparentTemperature: "apparent_temperature",
	MetricIsDay:               "is_day",
	MetricRelativeHumidity:    "relative_humidity",
	MetricShowers:             "showers",
	MetricWindGusts:           "wind_gusts",
	MetricSnowfall:            "snowfall",
	MetricWeatherCode:         "weather_code",
	MetricSurfacePressure:     "surface_pressure",
	MetricPressureMSL:         "pressure_msl",
	MetricCloudCover:          "cloud_cover",
}

// AllMetrics returns the full metric schema in canonical order.
func AllMetrics() []Metric {
	out := make([]Metric, len(allMetrics))
	copy(out, allMetrics)
	return out
}

// ProviderKey returns the Open-Meteo identifier for the metric.
func (m Metric) ProviderKey() string {
	return string(m)
}

// FieldName returns the normalized record field name for the metric.
func (m Metric) FieldName() string {
	return fieldNames[m]
}

// ParseMetric resolves a normalized field name (e.g. "windspeed") to its
// metric. Provider identifiers are not accepted.
func ParseMetric(name string) (Metric, error) {
	for _, m := range allMetrics {
		if fieldNames[m] == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", name)
}
