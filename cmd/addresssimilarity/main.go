package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"similarity/domain/address"
	"similarity/pkg/optional"
	"similarity/pkg/similarity"
)

const ErrUnknownOutputFormat errorkit.Error = "unknown output format"

type Config struct {
	OutputFormat string `env:"OUTPUT_FORMAT" enum:"text;json;" default:"text"`
}

func main() {
	ctx := logging.ContextWith(context.Background(), logger.Field("app", "addresssimilarity"))
	os.Exit(run(ctx, os.Stdout))
}

// run returns the process exit code.
func run(ctx context.Context, out io.Writer) int {
	if err := Main(ctx, out); err != nil {
		logger.Error(ctx, "error in main", logging.ErrField(err))
		return 1
	}
	return 0
}

func Main(ctx context.Context, out io.Writer) error {
	var c Config
	if err := env.Load(&c); err != nil {
		return err
	}

	home, office := homeAddress(), officeAddress()
	v := address.Explain(home, office)
	logger.Debug(ctx, "addresses classified",
		logging.Field("level", v.Level.String()),
		logging.Field("matches", v.Matches),
		logging.Field("decided_by", v.DecidedBy))

	return render(out, c.OutputFormat, v)
}

type report struct {
	Level      similarity.Level `json:"level"`
	Matches    int              `json:"matches"`
	DecidedBy  string           `json:"decidedBy,omitempty"`
	Mismatches []string         `json:"mismatches"`
}

func render(out io.Writer, format string, v similarity.Verdict) error {
	switch format {
	case "json":
		return json.NewEncoder(out).Encode(report{
			Level:      v.Level,
			Matches:    v.Matches,
			DecidedBy:  v.DecidedBy,
			Mismatches: v.Mismatches,
		})
	case "text":
		_, err := fmt.Fprintf(out, "home vs office: %s (matches: %d, decided by: %s)\n",
			v.Level, v.Matches, decidedBy(v))
		return err
	default:
		return ErrUnknownOutputFormat.F("%q", format)
	}
}

func decidedBy(v similarity.Verdict) string {
	if !v.ShortCircuited() {
		return "match count"
	}
	return v.DecidedBy
}

func homeAddress() address.Address {
	return address.Address{
		BuildingNumber: 10,
		BuildingName:   optional.Of("Trees"),
		StreetName:     "10th Street",
		Landmark:       "Next to Golf Course",
		Area:           "Suburb",
		City:           "Mumbai",
		Postcode:       "123001",
		State:          "MH",
		Country:        "India",
	}
}

func officeAddress() address.Address {
	return address.Address{
		BuildingNumber: 22,
		BuildingName:   optional.Of("City IT Center"),
		StreetName:     "15th Street",
		Landmark:       "Next to Golf Course",
		Area:           "Suburb",
		City:           "Mumbai",
		Postcode:       "123001",
		State:          "MH",
		Country:        "India",
	}
}
