package datatable_test

import (
	"encoding/json"
	"fmt"

	"github.com/calderaviz/caldera/pkg/datatable"
)

func ExampleDataTable_MarshalJSON() {
	// Declare a typed table and feed it one row. The date string is parsed
	// into a calendar instant during row construction.
	dt := datatable.New(nil)
	_ = dt.AddColumn(datatable.Column{Type: datatable.TypeString, Label: "Greeting"})
	_ = dt.AddColumn(datatable.Column{Type: datatable.TypeDate, Label: "Day"})

	if err := dt.AddRow([]any{"hello", "2024-01-15"}); err != nil {
		fmt.Println("Error:", err)
		return
	}

	data, err := json.MarshalIndent(dt, "", "  ")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(string(data))
	// Output:
	// {
	//   "cols": [
	//     {
	//       "type": "string",
	//       "label": "Greeting"
	//     },
	//     {
	//       "type": "date",
	//       "label": "Day"
	//     }
	//   ],
	//   "rows": [
	//     {
	//       "c": [
	//         {
	//           "v": "hello"
	//         },
	//         {
	//           "v": "Date(2024, 0, 15, 0, 0, 0)"
	//         }
	//       ]
	//     }
	//   ]
	// }
}

func ExampleBuildRow() {
	dt := datatable.New(nil)
	_ = dt.AddColumn(datatable.Column{Type: datatable.TypeString})
	_ = dt.AddColumn(datatable.Column{Type: datatable.TypeNumber})
	_ = dt.AddColumn(datatable.Column{Type: datatable.TypeNumber})

	// A nil input produces a null row at column width.
	row, _ := datatable.BuildRow(dt, nil)
	fmt.Println("width:", row.Width(), "null:", row.IsNull())

	// Positions the input does not cover are padded with null cells.
	row, _ = datatable.BuildRow(dt, []any{"partial", 1.5})
	fmt.Println("width:", row.Width(), "null:", row.IsNull())
	// Output:
	// width: 3 null: true
	// width: 3 null: false
}
