package di

import (
	"carrental/infras/kafka"
	"carrental/transport/http"
)

// provideClosers lists what the server releases after it stops accepting requests.
func provideClosers(producer kafka.Producer) []http.Closer {
	return []http.Closer{producer}
}
