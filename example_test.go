package carwash_test

import (
	"context"
	"fmt"

	"github.com/dealpredict/carwash"
	"github.com/dealpredict/carwash/catalog"
	"github.com/dealpredict/carwash/listing"
)

func Example() {
	cat := catalog.New(map[string][]string{
		"toyota": {"camry", "corolla"},
	})

	cleaner := carwash.New(cat).
		MinModelCount(1).
		Logger(carwash.NoopLogger()).
		Build()

	table := listing.NewTable(
		listing.Record{
			Model:        listing.String("2015 Camry LE"),
			Price:        listing.Int(15000),
			Odometer:     listing.Float(60000),
			Fuel:         listing.String("gas"),
			Transmission: listing.String("automatic"),
			TitleStatus:  listing.String("clean"),
			Type:         listing.String("sedan"),
			Drive:        listing.String("fwd"),
			State:        listing.String("ca"),
		},
		listing.Record{
			Model: listing.String("CALL NOW BEST PRICE"),
			Price: listing.Int(50),
		},
	)

	report, err := cleaner.Run(context.Background(), table)
	if err != nil {
		panic(err)
	}

	fmt.Println("rows out:", report.RowsOut)
	fmt.Println("model:", listing.Value(table.Rows[0].Model))
	fmt.Println("manufacturer:", listing.Value(table.Rows[0].Manufacturer))
	// Output:
	// rows out: 1
	// model: camry
	// manufacturer: toyota
}
