package server

import (
	"fmt"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/websocket"

	"mernsite/internal/nav"
)

const maxNavMessage = 1024

// navUpgrader keeps the default same-origin check.
var navUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Message types sent by the browser.
const (
	msgToggle      = "toggle"
	msgSubmenu     = "submenu"
	msgSubToggle   = "togglesubmenu"
	msgKey         = "key"
	msgFocus       = "focus"
	msgPointerDown = "pointerdown"
	msgRoute       = "route"
)

type navMessage struct {
	Type   string `json:"type"`
	Key    string `json:"key"`
	Top    int    `json:"top"`
	Sub    int    `json:"sub"`
	Inside bool   `json:"inside"`
	Path   string `json:"path"`
}

// navReply is sent after every message, and once on connect.
type navReply struct {
	nav.State
	Focus   nav.Focus `json:"focus"`
	Route   string    `json:"route"`
	Handled bool      `json:"handled"`
}

// navSession is one page view's navigation. The controller is subscribed to
// the session's pointer events for as long as the socket is open.
type navSession struct {
	ctrl *nav.Controller
	bus  *nav.Bus
}

func newNavSession(menu nav.Menu, route string) *navSession {
	ns := &navSession{ctrl: nav.NewController(menu, cleanRoute(route)), bus: nav.NewBus()}
	ns.ctrl.Mount(ns.bus)
	return ns
}

func (ns *navSession) close() {
	ns.ctrl.Unmount()
}

// apply feeds msg to the controller. handled is only meaningful for keys.
func (ns *navSession) apply(msg navMessage) (handled bool, err error) {
	switch msg.Type {
	case msgToggle:
		ns.ctrl.ToggleMobileMenu()
	case msgSubmenu:
		ns.ctrl.SetActiveSubmenu(msg.Key)
	case msgSubToggle:
		ns.ctrl.ToggleSubmenu(msg.Key)
	case msgKey:
		return ns.ctrl.HandleKey(msg.Key), nil
	case msgFocus:
		ns.ctrl.FocusItem(msg.Top, msg.Sub)
	case msgPointerDown:
		ns.bus.Publish(nav.Event{Type: nav.EventPointerDown, Inside: msg.Inside})
	case msgRoute:
		ns.ctrl.Navigate(cleanRoute(msg.Path))
	default:
		return false, fmt.Errorf("unknown message type %q", msg.Type)
	}
	return true, nil
}

func (ns *navSession) reply(handled bool) navReply {
	return navReply{
		State:   ns.ctrl.State(),
		Focus:   ns.ctrl.Focus(),
		Route:   ns.ctrl.Route(),
		Handled: handled,
	}
}

// cleanRoute keeps routes absolute; anything else becomes "/".
func cleanRoute(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/"
	}
	return path.Clean(p)
}

// serveNav runs one navigation session per connection.
func (s *Server) serveNav(w http.ResponseWriter, r *http.Request) {
	conn, err := navUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxNavMessage)

	session := newNavSession(s.Site().Menu, r.URL.Query().Get("route"))
	defer session.close()

	if err := conn.WriteJSON(session.reply(false)); err != nil {
		return
	}
	for {
		var msg navMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Nav socket closed: %v", err)
			}
			return
		}
		handled, err := session.apply(msg)
		if err != nil {
			log.Printf("Nav socket: %v", err)
		}
		if err := conn.WriteJSON(session.reply(handled)); err != nil {
			return
		}
	}
}
