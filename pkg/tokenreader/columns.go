package tokenreader

// Pick выбирает токены по индексам колонок (с нуля).
// Отсутствующая колонка дает "". Пустой columns возвращает tokens как есть.
func Pick(tokens []string, columns []int) []string {
	if len(columns) == 0 {
		return tokens
	}

	picked := make([]string, len(columns))
	for i, c := range columns {
		if c >= 0 && c < len(tokens) {
			picked[i] = tokens[c]
		}
	}

	return picked
}
