package catalog

// taxDeadlines returns the statutory rule table per the Nigeria Tax Act 2025
// and Tax Administration Act 2025.
func taxDeadlines() []Category {
	return []Category{
		{
			Key:         KeyIndividual,
			Name:        "👤 Individual Tax Obligations",
			Description: "PIT, CGT, Stamp Duties - Progressive rates 0%-25%",
			Obligations: []Obligation{
				{
					Title:       "Registration (Tax ID/TIN)",
					TaxType:     "PIT",
					DueDateText: "Before commencing business/employment",
					PenaltyText: "₦50,000 (1st month) + ₦25,000 for each subsequent month",
				},
				{
					Title:           "Annual Tax Return Filing",
					TaxType:         "PIT",
					DueDateText:     "By 31 January",
					Description:     "Self-Assessment/Sole Proprietor for preceding year",
					PenaltyText:     "₦100,000 (1st month) + ₦50,000 for each subsequent month",
					Recurring:       true,
					Month:           1,
					Day:             31,
					ReminderOffsets: []int{30, 14, 7, 3, 1},
				},
				{
					Title:           "PAYE Annual Return",
					TaxType:         "PAYE",
					DueDateText:     "By 31 January",
					Description:     "If employer - for preceding year",
					PenaltyText:     "₦100,000 (1st month) + ₦50,000 for each subsequent month",
					Recurring:       true,
					Month:           1,
					Day:             31,
					ReminderOffsets: []int{30, 14, 7, 3, 1},
				},
				{
					Title:           "Monthly PAYE Remittance",
					TaxType:         "PAYE",
					DueDateText:     "Within 14 days of deduction",
					Description:     "If employer",
					PenaltyText:     "10% of tax amount + interest + potential criminal liability",
					Recurring:       true,
					MonthlyDay:      14,
					ReminderOffsets: []int{10, 7, 3, 1},
				},
				{
					Title:       "Capital Gains Tax Filing",
					TaxType:     "CGT",
					DueDateText: "Upon disposal of taxable assets",
					Description: "Same rules as PIT apply",
					PenaltyText: "Standard late filing/payment penalties apply",
				},
			},
		},
		{
			Key:         KeySmallBusiness,
			Name:        "📈 Small Business Tax Obligations",
			Description: "Turnover ≤ ₦100M AND Assets ≤ ₦250M - Exempt from CIT & VAT on sales",
			Obligations: []Obligation{
				{
					Title:       "Registration (Tax ID/TIN)",
					TaxType:     "CIT",
					DueDateText: "Before commencing business operations",
					PenaltyText: "₦50,000 (1st month) + ₦25,000 for each subsequent month",
				},
				{
					Title:           "Annual Tax Return Filing",
					TaxType:         "CIT",
					DueDateText:     "Within 6 months after accounting year-end",
					Description:     "0% Tax Rate - Still must file",
					PenaltyText:     "₦100,000 (1st month) + ₦50,000 for each subsequent month",
					Recurring:       true,
					ReminderOffsets: []int{60, 30, 14, 7, 3, 1},
				},
				{
					Title:           "Monthly PAYE Remittance",
					TaxType:         "PAYE",
					DueDateText:     "Within 14 days of deduction",
					Description:     "If employer",
					PenaltyText:     "10% of tax amount + interest + potential criminal liability",
					Recurring:       true,
					MonthlyDay:      14,
					ReminderOffsets: []int{10, 7, 3, 1},
				},
				{
					Title:           "Monthly WHT Remittance",
					TaxType:         "WHT",
					DueDateText:     "Within 21 days of deduction",
					Description:     "If making payments subject to WHT",
					PenaltyText:     "40% of amount not deducted; 10% p.a. + interest for non-remittance",
					Recurring:       true,
					MonthlyDay:      21,
					ReminderOffsets: []int{14, 7, 3, 1},
				},
				{
					Title:           "Monthly WHT Return",
					TaxType:         "WHT",
					DueDateText:     "By 21st of following month",
					Description:     "If making payments subject to WHT",
					PenaltyText:     "40% of amount not deducted; 10% p.a. + interest for non-remittance",
					Recurring:       true,
					MonthlyDay:      21,
					ReminderOffsets: []int{14, 7, 3, 1},
				},
			},
		},
		{
			Key:         KeyCompany,
			Name:        "🏢 Company Tax Obligations",
			Description: "Turnover > ₦100M OR Assets > ₦250M - 30% CIT rate",
			Obligations: []Obligation{
				{
					Title:       "Registration (Tax ID/TIN)",
					TaxType:     "CIT",
					DueDateText: "Before commencing business operations",
					PenaltyText: "₦50,000 (1st month) + ₦25,000 for each subsequent month",
				},
				{
					Title:           "Annual Tax Return Filing",
					TaxType:         "CIT",
					DueDateText:     "Within 6 months after accounting year-end",
					Description:     "Audited accounts and self-assessment",
					PenaltyText:     "₦100,000 (1st month) + ₦50,000 for each subsequent month",
					Recurring:       true,
					ReminderOffsets: []int{60, 30, 14, 7, 3, 1},
				},
				{
					Title:           "Tax Payment (Self-Assessment)",
					TaxType:         "CIT",
					DueDateText:     "30 days after assessment OR 7 months after year-end",
					Description:     "Payment of assessed CIT",
					PenaltyText:     "10% of unpaid tax amount + interest",
					Recurring:       true,
					ReminderOffsets: []int{21, 14, 7, 3, 1},
				},
				{
					Title:           "Monthly VAT Return Filing",
					TaxType:         "VAT",
					DueDateText:     "By 21st of following month",
					Description:     "For transactions in preceding month",
					PenaltyText:     "₦100,000 (1st month) + ₦50,000 for each subsequent month",
					Recurring:       true,
					MonthlyDay:      21,
					ReminderOffsets: []int{14, 7, 3, 1},
				},
				{
					Title:           "Monthly VAT Remittance",
					TaxType:         "VAT",
					DueDateText:     "By 14th of following month",
					Description:     "Payment of VAT collected",
					PenaltyText:     "10% of tax amount + interest + potential imprisonment",
					Recurring:       true,
					MonthlyDay:      14,
					ReminderOffsets: []int{10, 7, 3, 1},
				},
				{
					Title:           "Monthly PAYE Remittance",
					TaxType:         "PAYE",
					DueDateText:     "Within 14 days of deduction",
					Description:     "Employee tax remittance",
					PenaltyText:     "10% of tax amount + interest + potential criminal liability",
					Recurring:       true,
					MonthlyDay:      14,
					ReminderOffsets: []int{10, 7, 3, 1},
				},
				{
					Title:           "Monthly WHT Remittance",
					TaxType:         "WHT",
					DueDateText:     "Within 21 days of deduction",
					Description:     "Withholding tax on payments",
					PenaltyText:     "40% of amount not deducted; 10% p.a. + interest for non-remittance",
					Recurring:       true,
					MonthlyDay:      21,
					ReminderOffsets: []int{14, 7, 3, 1},
				},
				{
					Title:           "Monthly WHT Return",
					TaxType:         "WHT",
					DueDateText:     "By 21st of following month",
					Description:     "WHT filing for preceding month",
					PenaltyText:     "40% of amount not deducted; 10% p.a. + interest for non-remittance",
					Recurring:       true,
					MonthlyDay:      21,
					ReminderOffsets: []int{14, 7, 3, 1},
				},
			},
		},
	}
}
