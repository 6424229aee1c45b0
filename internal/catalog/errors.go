package catalog

import "fmt"

// Ошибки прокси-клиента — отдельная ветка таксономии: транспорт, ответ
// каталога и декодирование различимы для вызывающего всегда.

// ConnectionError — каталог недоступен (DNS/TCP/TLS/таймаут).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to reach catalog service: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ResponseError — каталог ответил не-2xx; статус и тело отдаются как есть,
// без переинтерпретации.
type ResponseError struct {
	Status int
	Body   string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("catalog service returned %d: %s", e.Status, e.Body)
}

// DecodeError — тело ответа не разобралось в ожидаемую структуру;
// сырое тело сохраняем для диагностики.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode catalog response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
