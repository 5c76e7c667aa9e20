package dataset

// SampleCSV returns a small CSV template demonstrating the expected upload
// schema.
func SampleCSV() string {
	return `date,amount,description,category
2023-01-01,1000.00,Monthly Revenue,Income
2023-01-15,-250.75,Office Supplies,Expense
2023-02-01,1500.00,Service Income,Income
2023-02-15,-340.50,Utility Bill,Expense
2023-03-01,-125.00,Internet Bill,Expense
`
}
