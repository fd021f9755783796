package weather

// Record is one normalized observation. Fields always contains an entry
// for every metric in the schema, keyed by normalized field name; a nil
// value means the metric was not requested or the provider omitted it.
// Time is set only on hourly records.
type Record struct {
	Time   string
	Fields map[string]*float64
}

// Value returns the observed value for a metric, reporting false when
// the field is unselected.
func (r Record) Value(m Metric) (float64, bool) {
	v, ok := r.Fields[m.FieldName()]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// emptyRecord returns a record with the full field schema, all unset.
func emptyRecord() Record {
	fields := make(map[string]*float64, len(allMetrics))
	for _, m := range allMetrics {
		fields[m.FieldName()] = nil
	}
	return Record{Fields: fields}
}

// normalizeCurrent maps the provider's scalar "current" object into one
// record. Normalization is total: every schema field is present, and
// missing provider keys become unset fields, never an error.
func normalizeCurrent(raw map[string]any) Record {
	rec := emptyRecord()
	for _, m := range allMetrics {
		if v, ok := toFloat(raw[m.ProviderKey()]); ok {
			val := v
			rec.Fields[m.FieldName()] = &val
		}
	}
	return rec
}

// normalizeHourly maps the provider's columnar "hourly" object (parallel
// arrays keyed by metric, plus "time") into one record per timestamp.
// Records are positional: record i reads index i of every metric array,
// and a missing array, short array or null entry yields an unset field.
func normalizeHourly(raw map[string]any) []Record {
	times, _ := raw["time"].([]any)

	records := make([]Record, 0, len(times))
	for i, t := range times {
		rec := emptyRecord()
		rec.Time, _ = t.(string)

		for _, m := range allMetrics {
			arr, ok := raw[m.ProviderKey()].([]any)
			if !ok || i >= len(arr) {
				continue
			}
			if v, ok := toFloat(arr[i]); ok {
				val := v
				rec.Fields[m.FieldName()] = &val
			}
		}
		records = append(records, rec)
	}
	return records
}

// toFloat extracts a numeric value from a decoded JSON entry. Nulls and
// non-numeric values report false.
func toFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
