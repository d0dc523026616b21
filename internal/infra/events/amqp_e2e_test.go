//go:build e2e

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"supplier-marketplace/internal/usecase/shared"
)

func TestAMQPPublisher_Broker(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)
	url := fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())

	p, err := Dial(url, "marketplace.events", 10, time.Second)
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	// a separate consumer connection binds a queue to the exchange
	consumer, err := Dial(url, "marketplace.events", 1, 0)
	require.NoError(t, err)
	defer func() { _ = consumer.Close() }()

	ch, err := consumer.conn.Channel()
	require.NoError(t, err)
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "support.*", "marketplace.events", false, nil))
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	event := shared.SupportConfirmed{GrantID: uuid.New(), CompanyID: uuid.New(), GrantYear: 2024, GrantAmount: 10}
	require.NoError(t, p.Publish(ctx, shared.EventSupportConfirmed, event))

	select {
	case d := <-deliveries:
		var got shared.SupportConfirmed
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, event.GrantID, got.GrantID)
		assert.Equal(t, shared.EventSupportConfirmed, d.RoutingKey)
	case <-time.After(10 * time.Second):
		t.Fatal("event was not delivered")
	}
}
