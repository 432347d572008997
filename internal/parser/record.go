package parser

import "fmt"

// Record is one parsed row of the insured-individuals dataset. Fields are
// set at load time and never mutated afterwards.
type Record struct {
	Age      int
	Sex      string
	BMI      float64
	Children int
	Smoker   string
	Region   string
	Charges  float64
}

func (r Record) String() string {
	return fmt.Sprintf("Age: %d | Sex: %s | BMI: %.2f | Children: %d | Smoker: %s | Region: %s | Charges: %.2f",
		r.Age, r.Sex, r.BMI, r.Children, r.Smoker, r.Region, r.Charges)
}
