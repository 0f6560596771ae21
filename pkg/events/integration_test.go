package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/database"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
	"github.com/trilogy-group/nexus-agents/test/util"
)

// monitoringTestEnv holds all wired-up components for an integration test.
type monitoringTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	taskID       string // Pre-created ResearchTask (satisfies FK on events)
	channel      string // task:<taskID>
}

// setupMonitoringTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupMonitoringTest(t *testing.T) *monitoringTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create ResearchTask required by FK on events table
	taskID := uuid.New().String()
	_, err := dbClient.ResearchTask.Create().
		SetID(taskID).
		SetTitle("integration test task").
		SetResearchQuery("impact of solid-state batteries on EV range").
		SetResearchType(researchtask.ResearchTypeAnalyticalReport).
		SetStatus(researchtask.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	channel := TaskChannel(taskID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB(), config.DefaultBusConfig())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	// Keepalive disabled so "no more messages" assertions don't race a tick.
	manager := NewConnectionManager(catchupQuerier, 5*time.Second, 0)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &monitoringTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		taskID:       taskID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *monitoringTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *monitoringTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// LISTEN is issued synchronously before the confirmation is sent, but
	// poll anyway in case the command path ever becomes asynchronous.
	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupMonitoringTest(t)
	ctx := context.Background()

	// Publish first event (task status transition)
	err := env.publisher.PublishTaskStatus(ctx, TaskStatusPayload{
		TaskID: env.taskID,
		Status: researchtask.StatusSearching,
	})
	require.NoError(t, err)

	// Publish second event (phase completion)
	err = env.publisher.PublishPhaseStatus(ctx, PhaseStatusPayload{
		TaskID:     env.taskID,
		Phase:      "search",
		Status:     PhaseStatusCompleted,
		Total:      4,
		Succeeded:  4,
		DurationMS: 1200,
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.taskID, events[0].TaskID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeTaskStatus, events[0].Payload["type"])
	assert.Equal(t, "searching", events[0].Payload["status"])

	assert.Equal(t, EventTypePhaseStatus, events[1].Payload["type"])
	assert.Equal(t, "search", events[1].Payload["phase"])
	assert.Equal(t, float64(4), events[1].Payload["succeeded"])

	// Envelope fields are stamped at publish time
	assert.NotEmpty(t, events[0].Payload["event_id"])
	assert.NotEmpty(t, events[0].Payload["timestamp"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupMonitoringTest(t)
	ctx := context.Background()

	// Publish transient event (operation progress tick)
	err := env.publisher.PublishOperationProgress(ctx, OperationProgressPayload{
		TaskID:        env.taskID,
		OperationID:   uuid.New().String(),
		OperationType: "search_subtopic",
		QueueName:     "search",
		Status:        "running",
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupMonitoringTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishTaskStatus(ctx, TaskStatusPayload{
		TaskID: env.taskID,
		Status: researchtask.StatusPlanning,
	})
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeTaskStatus, msg["type"])
	assert.Equal(t, "planning", msg["status"])
	assert.Equal(t, env.taskID, msg["task_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupMonitoringTest(t)
	ctx := context.Background()

	// Connect, subscribe, wait for LISTEN
	conn := env.subscribeAndWait(t)

	// Publish transient event (no DB persistence)
	opID := uuid.New().String()
	err := env.publisher.PublishOperationProgress(ctx, OperationProgressPayload{
		TaskID:        env.taskID,
		OperationID:   opID,
		OperationType: "summarize_source",
		QueueName:     "llm",
		Status:        "completed",
	})
	require.NoError(t, err)

	// Should arrive via WebSocket
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeOperationProgress, msg["type"])
	assert.Equal(t, opID, msg["operation_id"])
	assert.Equal(t, "llm", msg["queue_name"])
	// No db_event_id — transient events never touch the events table
	assert.Nil(t, msg["db_event_id"])

	// Verify nothing was persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_PhaseLifecycleProtocol(t *testing.T) {
	// Verifies the full phase monitoring protocol:
	// 1. phase.status started (persistent)
	// 2. operation.progress ticks (transient, per fan-out operation)
	// 3. phase.status completed with counters (persistent)
	env := setupMonitoringTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	// 1. Publish phase.status started (persistent)
	err := env.publisher.PublishPhaseStatus(ctx, PhaseStatusPayload{
		TaskID: env.taskID,
		Phase:  "summarize",
		Status: PhaseStatusStarted,
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypePhaseStatus, msg["type"])
	assert.Equal(t, "summarize", msg["phase"])
	assert.Equal(t, PhaseStatusStarted, msg["status"])

	// 2. Publish per-operation progress ticks (transient)
	opIDs := []string{uuid.New().String(), uuid.New().String(), uuid.New().String()}
	for _, opID := range opIDs {
		err := env.publisher.PublishOperationProgress(ctx, OperationProgressPayload{
			TaskID:        env.taskID,
			OperationID:   opID,
			OperationType: "summarize_source",
			QueueName:     "llm",
			Status:        "completed",
		})
		require.NoError(t, err)

		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeOperationProgress, msg["type"])
		assert.Equal(t, opID, msg["operation_id"])
	}

	// 3. Publish phase.status completed with fan-out counters (persistent)
	err = env.publisher.PublishPhaseStatus(ctx, PhaseStatusPayload{
		TaskID:     env.taskID,
		Phase:      "summarize",
		Status:     PhaseStatusCompleted,
		Total:      3,
		Succeeded:  3,
		DurationMS: 950,
	})
	require.NoError(t, err)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypePhaseStatus, msg["type"])
	assert.Equal(t, PhaseStatusCompleted, msg["status"])
	assert.Equal(t, float64(3), msg["total"])
	assert.Equal(t, float64(3), msg["succeeded"])

	// Only the 2 persistent phase events should be in DB; the 3
	// operation.progress ticks are transient — not persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 2, "only persistent events should be in DB")
	assert.Equal(t, PhaseStatusStarted, events[0].Payload["status"])
	assert.Equal(t, PhaseStatusCompleted, events[1].Payload["status"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupMonitoringTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent status transitions
	statuses := []researchtask.Status{
		researchtask.StatusPlanning,
		researchtask.StatusSearching,
		researchtask.StatusSummarizing,
	}
	for _, status := range statuses {
		err := env.publisher.PublishTaskStatus(ctx, TaskStatusPayload{
			TaskID: env.taskID,
			Status: status,
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order, db_event_id injected
	for i, status := range statuses {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeTaskStatus, msg["type"])
		assert.Equal(t, string(status), msg["status"])
		assert.Equal(t, float64(allEvents[i].ID), msg["db_event_id"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for _, status := range statuses[1:] {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, string(status), msg["status"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
