package http

// digitsConstraint пропускает непустые строки из ASCII-цифр без знака.
// Переполнение int64 обрабатывается в обработчиках, а не маршрутизатором.
type digitsConstraint struct{}

const constraintDigits = "digits"

func (digitsConstraint) Name() string {
	return constraintDigits
}

func (digitsConstraint) Execute(param string, _ ...string) bool {
	if param == "" {
		return false
	}
	for i := 0; i < len(param); i++ {
		if param[i] < '0' || param[i] > '9' {
			return false
		}
	}
	return true
}
