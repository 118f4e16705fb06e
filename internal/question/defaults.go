package question

// DefaultPool returns the built-in question set used when no database pool is
// configured.
func DefaultPool() []Question {
	return []Question{
		{
			ID:            1,
			Prompt:        "What is the capital of France?",
			Options:       []string{"London", "Berlin", "Paris", "Madrid"},
			CorrectAnswer: 2,
			Difficulty:    DifficultyEasy,
			Explanation:   "Paris has been the capital of France since the 10th century.",
			Hint:          "It is known as the City of Light.",
		},
		{
			ID:            2,
			Prompt:        "Which planet is known as the Red Planet?",
			Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectAnswer: 1,
			Difficulty:    DifficultyEasy,
			Explanation:   "Iron oxide on the surface gives Mars its reddish color.",
			Hint:          "It is named after the Roman god of war.",
		},
		{
			ID:            3,
			Prompt:        "What is 2 + 2?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: 1,
			Difficulty:    DifficultyEasy,
			Hint:          "Count on your fingers.",
		},
		{
			ID:            4,
			Prompt:        "Which country is home to the kangaroo?",
			Options:       []string{"New Zealand", "South Africa", "Australia", "India"},
			CorrectAnswer: 2,
			Difficulty:    DifficultyEasy,
			Hint:          "Its flag features the Southern Cross.",
		},
		{
			ID:            5,
			Prompt:        "What is the largest ocean on Earth?",
			Options:       []string{"Atlantic", "Indian", "Arctic", "Pacific"},
			CorrectAnswer: 3,
			Difficulty:    DifficultyEasy,
			Explanation:   "The Pacific covers about a third of the Earth's surface.",
			Hint:          "Magellan named it for its calm waters.",
		},
		{
			ID:            6,
			Prompt:        "What is the largest mammal?",
			Options:       []string{"African Elephant", "Blue Whale", "Giraffe", "Hippopotamus"},
			CorrectAnswer: 1,
			Difficulty:    DifficultyEasy,
			Hint:          "It lives in the ocean.",
		},
		{
			ID:            7,
			Prompt:        "Who wrote 'Romeo and Juliet'?",
			Options:       []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"},
			CorrectAnswer: 1,
			Difficulty:    DifficultyMedium,
			Hint:          "He was born in Stratford-upon-Avon.",
		},
		{
			ID:            8,
			Prompt:        "What year did World War II end?",
			Options:       []string{"1943", "1944", "1945", "1946"},
			CorrectAnswer: 2,
			Difficulty:    DifficultyMedium,
			Explanation:   "The war ended in 1945 with the surrender of Japan in September.",
			Hint:          "The same year the United Nations was founded.",
		},
		{
			ID:            9,
			Prompt:        "What is the chemical symbol for gold?",
			Options:       []string{"Ag", "Au", "Fe", "Cu"},
			CorrectAnswer: 1,
			Difficulty:    DifficultyMedium,
			Explanation:   "Au comes from the Latin 'aurum'.",
			Hint:          "Think Latin, not English.",
		},
		{
			ID:            10,
			Prompt:        "What is the square root of 144?",
			Options:       []string{"10", "11", "12", "13"},
			CorrectAnswer: 2,
			Difficulty:    DifficultyMedium,
			Hint:          "A dozen dozens make a gross.",
		},
		{
			ID:            11,
			Prompt:        "Who painted the Mona Lisa?",
			Options:       []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"},
			CorrectAnswer: 2,
			Difficulty:    DifficultyMedium,
			Explanation:   "Leonardo painted it in the early 16th century; it hangs in the Louvre.",
			Hint:          "He also designed flying machines.",
		},
		{
			ID:            12,
			Prompt:        "In which year did the first moon landing occur?",
			Options:       []string{"1967", "1968", "1969", "1970"},
			CorrectAnswer: 2,
			Difficulty:    DifficultyMedium,
			Hint:          "One small step, one year before 1970.",
		},
		{
			ID:            13,
			Prompt:        "What is the speed of light in a vacuum?",
			Options:       []string{"186,000 mph", "300,000 km/s", "300,000 m/s", "150,000 km/s"},
			CorrectAnswer: 1,
			Difficulty:    DifficultyHard,
			Explanation:   "Light travels at roughly 299,792 kilometres per second.",
			Hint:          "Just under a third of a million kilometres per second.",
		},
		{
			ID:            14,
			Prompt:        "What is the largest country by land area?",
			Options:       []string{"China", "United States", "Canada", "Russia"},
			CorrectAnswer: 3,
			Difficulty:    DifficultyHard,
			Hint:          "It spans eleven time zones.",
		},
		{
			ID:            15,
			Prompt:        "Which mountain range separates Europe from Asia?",
			Options:       []string{"Alps", "Himalayas", "Ural Mountains", "Andes"},
			CorrectAnswer: 2,
			Difficulty:    DifficultyHard,
			Hint:          "It runs through western Russia.",
		},
		{
			ID:            16,
			Prompt:        "What is the smallest country in the world?",
			Options:       []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"},
			CorrectAnswer: 1,
			Difficulty:    DifficultyHard,
			Explanation:   "Vatican City covers roughly 0.44 square kilometres.",
			Hint:          "It is entirely surrounded by one city.",
		},
		{
			ID:            17,
			Prompt:        "In what year did the Titanic sink?",
			Options:       []string{"1905", "1912", "1918", "1922"},
			CorrectAnswer: 1,
			Difficulty:    DifficultyHard,
			Hint:          "Two years before the First World War began.",
		},
		{
			ID:            18,
			Prompt:        "Which element has the atomic number 1?",
			Options:       []string{"Helium", "Oxygen", "Hydrogen", "Carbon"},
			CorrectAnswer: 2,
			Difficulty:    DifficultyHard,
			Explanation:   "Hydrogen has a single proton.",
			Hint:          "The lightest element there is.",
		},
	}
}

// DefaultRules mirrors the 12-question show format with a 4/4/4 difficulty
// split. The fallback ids cover a full game in ladder order.
func DefaultRules() Rules {
	return Rules{
		QuestionsPerGame: 12,
		EasyCount:        4,
		MediumCount:      4,
		HardCount:        4,
		FallbackIDs:      []int{1, 2, 3, 4, 7, 8, 9, 10, 13, 14, 15, 16},
	}
}
