// Package dictation extracts client fields from a transcribed Spanish
// utterance: phone, name, loan amounts and rates, debt, comment and a
// callback time. Parsing is rule based, deterministic and never fails; a
// field that cannot be read is left empty.
package dictation

import "strings"

// Result holds the fields found in one dictation. Empty strings and a nil
// ScheduledTime mean the field was not dictated.
type Result struct {
	Phone              string     `json:"phone,omitempty"`
	Name               string     `json:"name,omitempty"`
	PersonalLoanAmount string     `json:"personal_loan_amount,omitempty"`
	PersonalLoanRate   string     `json:"personal_loan_rate,omitempty"`
	Debt               string     `json:"debt,omitempty"`
	DebtPurchaseAmount string     `json:"debt_purchase_amount,omitempty"`
	DebtPurchaseRate   string     `json:"debt_purchase_rate,omitempty"`
	Comment            string     `json:"comment,omitempty"`
	ScheduledTime      *TimeOfDay `json:"scheduled_time,omitempty"`
}

// IsEmpty reports whether no field was extracted.
func (r Result) IsEmpty() bool {
	return r == Result{}
}

// Parse extracts every recognizable field from input. It is safe for
// concurrent use.
func Parse(input string) Result {
	if strings.TrimSpace(input) == "" {
		return Result{}
	}

	f := fold(input)
	phone, hasPhone := detectPhone(f.text)

	var res Result
	if hasPhone {
		res.Phone = phone.digits
	}
	res.Name = detectName(f, phone, hasPhone)
	res.PersonalLoanAmount = personalLoanAmountField.extract(f.text)
	res.PersonalLoanRate = personalLoanRateField.extract(f.text)
	res.Debt = debtField.extract(f.text)
	res.DebtPurchaseAmount = debtPurchaseAmountField.extract(f.text)
	res.DebtPurchaseRate = debtPurchaseRateField.extract(f.text)
	res.Comment = detectComment(f)
	if t, ok := detectTime(f.text); ok {
		res.ScheduledTime = &t
	}
	return res
}
