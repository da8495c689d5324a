package libraries

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/badge"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DesignerMessageType enumerates the live designer protocol. One websocket
// connection owns one badge.Session; the client sends pointer, keyboard
// and zoom events and receives the full render state back after each one.
type DesignerMessageType string

const (
	DesignerMessageTypePing   DesignerMessageType = "ping"
	DesignerMessageTypePong   DesignerMessageType = "pong"
	DesignerMessageTypeError  DesignerMessageType = "error"
	DesignerMessageTypeLoad   DesignerMessageType = "load"
	DesignerMessageTypeState  DesignerMessageType = "state"
	DesignerMessageTypeSave   DesignerMessageType = "save"
	DesignerMessageTypeSaved  DesignerMessageType = "saved"
	DesignerMessageTypeLoaded DesignerMessageType = "loaded"

	DesignerMessageTypePointerDown   DesignerMessageType = "pointer_down"
	DesignerMessageTypePointerMove   DesignerMessageType = "pointer_move"
	DesignerMessageTypePointerUp     DesignerMessageType = "pointer_up"
	DesignerMessageTypePointerCancel DesignerMessageType = "pointer_cancel"
	DesignerMessageTypeWindowBlur    DesignerMessageType = "window_blur"
	DesignerMessageTypeResizeStart   DesignerMessageType = "resize_start"
	DesignerMessageTypeResizeMove    DesignerMessageType = "resize_move"
	DesignerMessageTypeResizeStop    DesignerMessageType = "resize_stop"
	DesignerMessageTypeClick         DesignerMessageType = "click"
	DesignerMessageTypeKey           DesignerMessageType = "key"
	DesignerMessageTypeInputFocus    DesignerMessageType = "input_focus"

	DesignerMessageTypeAddComponent    DesignerMessageType = "add_component"
	DesignerMessageTypeUpdateComponent DesignerMessageType = "update_component"
	DesignerMessageTypeRequestDelete   DesignerMessageType = "request_delete"
	DesignerMessageTypeConfirmDelete   DesignerMessageType = "confirm_delete"
	DesignerMessageTypeCancelDelete    DesignerMessageType = "cancel_delete"
	DesignerMessageTypeUndo            DesignerMessageType = "undo"
	DesignerMessageTypeRedo            DesignerMessageType = "redo"

	DesignerMessageTypeZoom            DesignerMessageType = "zoom"
	DesignerMessageTypeZoomDelta       DesignerMessageType = "zoom_delta"
	DesignerMessageTypeFit             DesignerMessageType = "fit"
	DesignerMessageTypeContainerResize DesignerMessageType = "container_resize"
	DesignerMessageTypeSetCanvas       DesignerMessageType = "set_canvas"
	DesignerMessageTypeSwapOrientation DesignerMessageType = "swap_orientation"
)

var (
	errInvalidPayload = errors.New("Invalid message payload")
	errUnknownType    = errors.New("Unknown message type")
	errSaveFailed     = errors.New("Failed to save template")
)

type DesignerMessage struct {
	Type DesignerMessageType `json:"type"`
	Data json.RawMessage     `json:"data,omitempty"`
}

type loadPayload struct {
	TemplateID string `json:"template_id"`
}

type pointerPayload struct {
	ID string  `json:"id,omitempty"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type sizePayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type keyPayload struct {
	Key string `json:"key"`
}

type focusPayload struct {
	Focused bool `json:"focused"`
}

type addComponentPayload struct {
	Kind     string       `json:"kind"`
	FieldRef string       `json:"fieldRef,omitempty"`
	Label    string       `json:"label,omitempty"`
	Drop     *badge.Point `json:"drop,omitempty"`
}

type updateComponentPayload struct {
	ID    string      `json:"id"`
	Patch badge.Patch `json:"patch"`
}

type zoomPayload struct {
	Value float64 `json:"value"`
}

// DesignerBackend loads and saves the template documents behind a
// designer connection.
type DesignerBackend interface {
	LoadTemplate(templateID uuid.UUID) (*badge.TemplateDocument, error)
	SaveTemplate(templateID uuid.UUID, doc *badge.TemplateDocument) error
}

func sendDesignerMessage(conn *websocket.Conn, t DesignerMessageType, data interface{}) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			log.Println("failed to marshal designer payload:", err)
			return
		}
		raw = b
	}
	msg, err := json.Marshal(DesignerMessage{Type: t, Data: raw})
	if err != nil {
		log.Println("failed to marshal designer message:", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Println("write error:", err)
	}
}

func sendDesignerError(conn *websocket.Conn, errMsg string) {
	sendDesignerMessage(conn, DesignerMessageTypeError, fiber.Map{"message": errMsg})
}

// DesignerSocketHandler runs the live badge designer over a websocket.
// All session mutation happens on the read loop, so the editor state never
// sees concurrent writers.
func DesignerSocketHandler(backend DesignerBackend) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		var (
			session    *badge.Session
			templateID uuid.UUID
		)

		// The gesture teardown is guaranteed on every exit path,
		// including an abruptly closed connection.
		defer func() {
			if session != nil {
				session.PointerCancel()
			}
			conn.Close()
		}()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				break
			}

			var msg DesignerMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				sendDesignerError(conn, "Invalid JSON format")
				continue
			}

			if msg.Type == DesignerMessageTypePing {
				sendDesignerMessage(conn, DesignerMessageTypePong, nil)
				continue
			}

			if msg.Type == DesignerMessageTypeLoad {
				var p loadPayload
				if err := json.Unmarshal(msg.Data, &p); err != nil {
					sendDesignerError(conn, "Invalid load payload")
					continue
				}
				id, err := uuid.Parse(p.TemplateID)
				if err != nil {
					sendDesignerError(conn, "Invalid template ID")
					continue
				}
				doc, err := backend.LoadTemplate(id)
				if err != nil {
					sendDesignerError(conn, "Template not found")
					continue
				}
				templateID = id
				session = badge.LoadSession(doc)
				sendDesignerMessage(conn, DesignerMessageTypeLoaded, session.State())
				continue
			}

			if session == nil {
				sendDesignerError(conn, "Load a template first")
				continue
			}

			if err := applyDesignerMessage(session, backend, templateID, conn, msg); err != nil {
				sendDesignerError(conn, err.Error())
				continue
			}
			sendDesignerMessage(conn, DesignerMessageTypeState, session.State())
		}
	})
}

func applyDesignerMessage(session *badge.Session, backend DesignerBackend, templateID uuid.UUID, conn *websocket.Conn, msg DesignerMessage) error {
	switch msg.Type {
	case DesignerMessageTypePointerDown:
		var p pointerPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.PointerDown(p.ID, badge.Point{X: p.X, Y: p.Y})
	case DesignerMessageTypePointerMove:
		var p pointerPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.PointerMove(badge.Point{X: p.X, Y: p.Y})
	case DesignerMessageTypePointerUp:
		session.PointerUp()
	case DesignerMessageTypePointerCancel:
		session.PointerCancel()
	case DesignerMessageTypeWindowBlur:
		session.WindowBlur()
	case DesignerMessageTypeResizeStart:
		var p pointerPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.StartResize(p.ID)
	case DesignerMessageTypeResizeMove:
		var p sizePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.ResizeMove(p.Width, p.Height)
	case DesignerMessageTypeResizeStop:
		session.ResizeStop()
	case DesignerMessageTypeClick:
		var p pointerPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.Click(p.ID)
	case DesignerMessageTypeKey:
		var p keyPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.HandleKey(p.Key)
	case DesignerMessageTypeInputFocus:
		var p focusPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.SetTextInputFocus(p.Focused)
	case DesignerMessageTypeAddComponent:
		var p addComponentPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.AddComponent(badge.ComponentKind(p.Kind), p.FieldRef, p.Label, p.Drop)
	case DesignerMessageTypeUpdateComponent:
		var p updateComponentPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.UpdateComponent(p.ID, p.Patch)
	case DesignerMessageTypeRequestDelete:
		session.RequestDelete()
	case DesignerMessageTypeConfirmDelete:
		session.ConfirmDelete()
	case DesignerMessageTypeCancelDelete:
		session.CancelDelete()
	case DesignerMessageTypeUndo:
		session.Undo()
	case DesignerMessageTypeRedo:
		session.Redo()
	case DesignerMessageTypeZoom:
		var p zoomPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.SetZoom(p.Value)
	case DesignerMessageTypeZoomDelta:
		var p zoomPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.IncrementZoom(p.Value)
	case DesignerMessageTypeFit:
		var p sizePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.Fit(p.Width, p.Height)
	case DesignerMessageTypeContainerResize:
		var p sizePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.ContainerResized(p.Width, p.Height)
	case DesignerMessageTypeSetCanvas:
		var p badge.CanvasSettings
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return errInvalidPayload
		}
		session.SetCanvas(p)
	case DesignerMessageTypeSwapOrientation:
		session.SwapOrientation()
	case DesignerMessageTypeSave:
		if err := backend.SaveTemplate(templateID, session.Document()); err != nil {
			log.Println(err, "Error saving designer document")
			return errSaveFailed
		}
		sendDesignerMessage(conn, DesignerMessageTypeSaved, nil)
	default:
		return errUnknownType
	}
	return nil
}
