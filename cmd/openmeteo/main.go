package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	flag "github.com/spf13/pflag"

	"github.com/Jose15Gon/OpenMeteoService/internal/config"
	"github.com/Jose15Gon/OpenMeteoService/internal/weather"
)

const flagDateFormat = "2006-01-02"

var validate = validator.New()

// dateRange holds the historical query window.
type dateRange struct {
	Start time.Time `validate:"required"`
	End   time.Time `validate:"required,gtefield=Start"`
}

func main() {
	var startDateFlag = flag.StringP("start-date", "s", "", "start date (yyyy-mm-dd), default is yesterday")
	var endDateFlag = flag.StringP("end-date", "e", "", "end date (yyyy-mm-dd), default is today")
	var metricsFlag = flag.StringSliceP("metrics", "m", nil, "metrics to request, by normalized name (e.g. temperature,windspeed)")

	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		log.Fatal("usage: openmeteo [flags] <lat> <lng>")
	}

	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		log.Fatalf("invalid latitude %q: %v", args[0], err)
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		log.Fatalf("invalid longitude %q: %v", args[1], err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	metrics := cfg.Metrics
	if len(*metricsFlag) > 0 {
		metrics = metrics[:0:0]
		for _, name := range *metricsFlag {
			m, err := weather.ParseMetric(name)
			if err != nil {
				log.Fatal(err)
			}
			metrics = append(metrics, m)
		}
	}

	if *startDateFlag == "" {
		*startDateFlag = time.Now().AddDate(0, 0, -1).Format(flagDateFormat)
	}
	if *endDateFlag == "" {
		*endDateFlag = time.Now().Format(flagDateFormat)
	}

	startDate, err := time.ParseInLocation(flagDateFormat, *startDateFlag, time.UTC)
	if err != nil {
		log.Fatal(err)
	}
	endDate, err := time.ParseInLocation(flagDateFormat, *endDateFlag, time.UTC)
	if err != nil {
		log.Fatal(err)
	}

	window := dateRange{Start: startDate, End: endDate}
	if err := validate.Struct(window); err != nil {
		log.Fatalf("invalid date range: %v", err)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	client := weather.NewClientWithHTTP(httpClient, cfg.BaseURL, lat, lng)
	client.SetMetrics(metrics...)

	ctx := context.Background()

	current, err := client.FetchCurrent(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Clima actual:")
	printRecord(current)

	records, err := client.FetchHistorical(ctx, startDate, endDate)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	fmt.Println("Datos históricos (por hora):")
	for _, rec := range records {
		printRecord(rec)
		fmt.Println()
	}
}

// printRecord writes one field per line in schema order. Unset fields
// print the "unselected" placeholder.
func printRecord(r weather.Record) {
	if r.Time != "" {
		fmt.Printf("time: %s\n", r.Time)
	}
	for _, m := range weather.AllMetrics() {
		if v, ok := r.Value(m); ok {
			fmt.Printf("%s: %g\n", m.FieldName(), v)
		} else {
			fmt.Printf("%s: unselected\n", m.FieldName())
		}
	}
}
