package domain

// Outcome - результат обращения к внешнему API.
// Каждый вызов клиента возвращает либо Success с данными, либо Failure с текстом
// ошибки; исключения никогда не выходят за границу клиента. Потребитель обязан
// явно обработать оба варианта.
type Outcome[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok создаёт успешный Outcome с данными
func Ok[T any](data T) Outcome[T] {
	return Outcome[T]{Success: true, Data: data}
}

// Fail создаёт неуспешный Outcome с сообщением об ошибке
func Fail[T any](message string) Outcome[T] {
	return Outcome[T]{Success: false, Error: message}
}
