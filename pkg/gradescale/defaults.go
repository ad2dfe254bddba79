package gradescale

// DefaultScales returns the three published conversion tables the tool ships
// with. Each call builds fresh values, so callers can adjust their copy
// without affecting anyone else.
func DefaultScales() []Scale {
	return []Scale{
		{
			ID:       1,
			Name:     "Abroaders calculator",
			Source:   "https://calculadora.abroaders.com.br/",
			MaxGrade: 10,
			Entries: []Entry{
				{Min: 9, GPA: 4.0},
				{Min: 7, GPA: 3.0},
				{Min: 5, GPA: 2.0},
				{Min: 3, GPA: 1.0},
				{Min: 0, GPA: 0.0},
			},
		},
		{
			ID:       2,
			Name:     "Centralia College chart",
			Source:   "https://www.centralia.edu/academics/earth-science/resources/gpa-calculator.html",
			MaxGrade: 10,
			Entries: []Entry{
				{Min: 9.7, GPA: 4.0},
				{Min: 9.6, GPA: 3.9},
				{Min: 9.5, GPA: 3.8},
				{Min: 9.3, GPA: 3.7},
				{Min: 9.1, GPA: 3.6},
				{Min: 9.0, GPA: 3.5},
				{Min: 8.8, GPA: 3.4},
				{Min: 8.7, GPA: 3.3},
				{Min: 8.5, GPA: 3.2},
				{Min: 8.4, GPA: 3.1},
				{Min: 8.2, GPA: 3.0},
				{Min: 8.0, GPA: 2.9},
				{Min: 7.9, GPA: 2.8},
				{Min: 7.8, GPA: 2.7},
				{Min: 7.7, GPA: 2.6},
				{Min: 7.6, GPA: 2.5},
				{Min: 7.5, GPA: 2.4},
				{Min: 7.4, GPA: 2.3},
				{Min: 7.3, GPA: 2.2},
				{Min: 7.2, GPA: 2.1},
				{Min: 7.1, GPA: 2.0},
				{Min: 7.0, GPA: 1.9},
				{Min: 6.9, GPA: 1.8},
				{Min: 6.8, GPA: 1.7},
				{Min: 6.7, GPA: 1.6},
				{Min: 6.6, GPA: 1.5},
				{Min: 6.5, GPA: 1.4},
				{Min: 6.4, GPA: 1.3},
				{Min: 6.2, GPA: 1.2},
				{Min: 6.1, GPA: 1.1},
				{Min: 6.0, GPA: 1.0},
				{Min: 0, GPA: 0.0},
			},
		},
		{
			ID:       3,
			Name:     "PrepScholar chart",
			Source:   "https://www.prepscholar.com/gpa-calculator/",
			MaxGrade: 10,
			Entries: []Entry{
				{Min: 9.3, GPA: 4.0},
				{Min: 9.0, GPA: 3.7},
				{Min: 8.7, GPA: 3.3},
				{Min: 8.3, GPA: 3.0},
				{Min: 8.0, GPA: 2.7},
				{Min: 7.7, GPA: 2.3},
				{Min: 7.3, GPA: 2.0},
				{Min: 7.0, GPA: 1.7},
				{Min: 6.7, GPA: 1.3},
				{Min: 6.5, GPA: 1.0},
				{Min: 0, GPA: 0.0},
			},
		},
	}
}
