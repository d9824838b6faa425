package models

// DefaultCourses is the content tree used when nothing has been stored yet.
func DefaultCourses() []Course {
	return []Course{
		{
			ID:   "1",
			Name: "Matemática",
			Subjects: []Subject{
				{
					ID:   "1",
					Name: "Álgebra",
					Flashcards: []Flashcard{
						{
							ID:       "1",
							Question: "O que é uma equação de segundo grau?",
							Answer:   "Uma equação de segundo grau é uma equação polinomial onde o maior expoente da variável é 2. Sua forma geral é ax² + bx + c = 0, onde a ≠ 0.",
						},
						{
							ID:       "2",
							Question: "Como resolver uma equação do tipo x² - 5x + 6 = 0?",
							Answer:   "Usando a fórmula de Bhaskara: x = (-b ± √(b²-4ac))/2a. Para x² - 5x + 6 = 0: x = (5 ± √(25-24))/2 = (5 ± 1)/2. Soluções: x = 3 ou x = 2.",
						},
					},
				},
				{
					ID:   "2",
					Name: "Geometria",
					Flashcards: []Flashcard{
						{
							ID:       "3",
							Question: "Qual é a fórmula da área de um círculo?",
							Answer:   "A área de um círculo é calculada pela fórmula A = πr², onde r é o raio do círculo e π ≈ 3,14159.",
						},
					},
				},
			},
		},
		{
			ID:   "2",
			Name: "História",
			Subjects: []Subject{
				{
					ID:   "3",
					Name: "Brasil Colonial",
					Flashcards: []Flashcard{
						{
							ID:       "4",
							Question: "Quando foi o descobrimento do Brasil?",
							Answer:   "O Brasil foi descoberto em 22 de abril de 1500 por Pedro Álvares Cabral durante uma expedição portuguesa às Índias.",
						},
					},
				},
			},
		},
	}
}
