package stub

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Handler answers frames sent to one registered stub object. HandleMessage
// is called once per frame read from the connection after registration;
// a non-nil response is written back as its own frame.
type Handler interface {
	HandleMessage(payload []byte) (response []byte, err error)
}

// Constructor builds the Handler for a newly registered stub of a given
// type, addressed by the id the client chose for it.
type Constructor func(id string) Handler

// Stub is one live connection registered with a Central: a client dials
// in, sends a "type,id" registration frame, and from then on every frame
// it sends is routed to the Handler that type was registered with.
type Stub struct {
	ConnID uuid.UUID
	Type   string
	ID     string

	conn    net.Conn
	handler Handler
}

// Send writes an unsolicited frame to this stub's connection -- used by
// test code that wants to push data to the client rather than only
// answering what it asks.
func (s *Stub) Send(payload []byte) error {
	return WriteFrame(s.conn, payload)
}

// Central listens for stub connections and dispatches their frames to
// the handler registered for each connection's announced type, one
// goroutine per connection.
type Central struct {
	mu           sync.Mutex
	constructors map[string]Constructor
	objects      map[uuid.UUID]*Stub

	Log *log.Logger
}

// NewCentral returns an empty registry ready to have stub types registered
// on it before Serve is called.
func NewCentral() *Central {
	return &Central{
		constructors: make(map[string]Constructor),
		objects:      make(map[uuid.UUID]*Stub),
		Log:          log.Default(),
	}
}

// Register associates a stub type name with the constructor that builds
// its Handler. Serve rejects a registration frame naming an unregistered
// type by simply closing that connection.
func (c *Central) Register(typeName string, ctor Constructor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constructors[typeName] = ctor
}

// Get returns the stub registered under id, if it is currently connected.
func (c *Central) Get(id string) (*Stub, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.objects {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Serve accepts connections on addr until ctx is cancelled or the listener
// errors. It returns once the listener is closed.
func (c *Central) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("stub: listen on %s: %w", addr, err)
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}
		go c.handleConn(conn)
	}
}

func (c *Central) handleConn(conn net.Conn) {
	defer conn.Close()

	regFrame, err := ReadFrame(conn)
	if err != nil {
		c.Log.Printf("[WARN] stub: registration read failed: %v", err)
		return
	}
	typeName, id, ok := splitRegistration(regFrame)
	if !ok {
		c.Log.Printf("[WARN] stub: malformed registration frame %q", regFrame)
		return
	}

	c.mu.Lock()
	ctor, ok := c.constructors[typeName]
	c.mu.Unlock()
	if !ok {
		c.Log.Printf("[WARN] stub: no handler registered for type %q", typeName)
		return
	}

	stub := &Stub{ConnID: uuid.New(), Type: typeName, ID: id, conn: conn, handler: ctor(id)}

	c.mu.Lock()
	c.objects[stub.ConnID] = stub
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.objects, stub.ConnID)
		c.mu.Unlock()
	}()

	for {
		frame, err := ReadFrame(conn)
		if err != nil {
			return
		}
		resp, err := stub.handler.HandleMessage(frame)
		if err != nil {
			c.Log.Printf("[WARN] stub: handler for %s/%s returned error: %v", typeName, id, err)
			return
		}
		if resp != nil {
			if err := WriteFrame(conn, resp); err != nil {
				return
			}
		}
	}
}

func splitRegistration(frame []byte) (typeName, id string, ok bool) {
	idx := bytes.IndexByte(frame, ',')
	if idx < 0 {
		return "", "", false
	}
	return string(frame[:idx]), strings.TrimSpace(string(frame[idx+1:])), true
}
