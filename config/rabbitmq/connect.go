package rabbitmq

import (
	"fmt"
	"sync"

	"mediasearch-srv/config"
	"mediasearch-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IRabbitMQ
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the RabbitMQ connection using singleton pattern.
func Connect(cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		conn, e := rabbitmq.NewRabbitMQ(cfg.URL, false)
		if e != nil {
			err = fmt.Errorf("failed to connect to RabbitMQ: %w", e)
			initErr = err
			return
		}
		instance = conn
	})

	return instance, err
}

// GetConnection returns the singleton RabbitMQ connection.
// Panics if the connection has not been initialized by calling Connect() first.
func GetConnection() rabbitmq.IRabbitMQ {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("RabbitMQ connection not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck checks if the RabbitMQ connection is open.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("RabbitMQ connection not initialized")
	}
	if instance.IsClosed() {
		return fmt.Errorf("RabbitMQ connection is closed")
	}
	return nil
}

// Disconnect closes the RabbitMQ connection and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
