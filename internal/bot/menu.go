package bot

import (
	"github.com/mercadoenlinea/simon/internal/ai"
	"github.com/mercadoenlinea/simon/internal/whatsapp"
)

// step is one node of the guided menu: the choice label it records, and
// either a terminal text reply or a two-button interactive prompt.
type step struct {
	choice  string
	text    string
	body    string
	buttons []whatsapp.ButtonReply
}

func (s step) interactive() bool { return len(s.buttons) > 0 }

// transitions maps a button-reply id to the next step. Ids not present here
// are ignored: the event is acknowledged and nothing is sent.
var transitions = map[string]step{
	"pedido": {
		choice: "pedido",
		body:   "Te ayudo a llevar el registro de tu pedido. Confirmame si deseas continuar con el proceso, ya que te pediré el número de tu pedido para continuar.",
		buttons: []whatsapp.ButtonReply{
			{ID: "pedido_si", Title: "Si"},
			{ID: "pedido_no", Title: "No"},
		},
	},
	"pedido_si": {
		choice: "pedido_si",
		text:   "Dame tu número de pedido, y te diré cómo va el proceso.",
	},
	"pedido_no": {
		choice: "pedido_no",
		text:   "Bueno, ¿Hay algo más en lo que puedo ayudarte?",
	},
	"ofertas": {
		choice: "ofertas",
		body:   "Contamos con Arroz Flor y Carnes Mocorita para ti. ¿Cuál te interesa agregar al carrito?",
		buttons: []whatsapp.ButtonReply{
			{ID: "oferta_arroz", Title: "Arroz"},
			{ID: "oferta_carne", Title: "Carne"},
		},
	},
	"oferta_arroz": {
		choice: "oferta_arroz",
		body:   "Tenemos 2 presentaciones: en quintal, o un saco de 10kg. ¿Cuál prefieres?",
		buttons: []whatsapp.ButtonReply{
			{ID: "arroz_quintal", Title: "Quintal"},
			{ID: "arroz_10kg", Title: "10kg"},
		},
	},
	"arroz_quintal": {
		choice: "arroz_quintal",
		body:   "Genial. ¿Quieres uno o más?",
		buttons: []whatsapp.ButtonReply{
			{ID: "arroz_quintal_1", Title: "1"},
			{ID: "arroz_quintal_más", Title: "Más de 1"},
		},
	},
	"arroz_quintal_1": {
		choice: "arroz_quintal_1",
		body:   "Tu producto fue añadido al carrito de compras! ¿Deseas comprar algo más? ¿O continuamos con el pago?",
		buttons: []whatsapp.ButtonReply{
			{ID: "comprar_más", Title: "Más"},
			{ID: "proceso_de_pago", Title: "Pagar"},
		},
	},
	"oferta_carne": {
		choice: "oferta_carne",
		body:   "Tenemos 2 tipos de carne: en quintal, o un saco de 10kg. ¿Cuál prefieres?",
		buttons: []whatsapp.ButtonReply{
			{ID: "carne_pollo", Title: "Pollo"},
			{ID: "carne_cerdo", Title: "Cerdo"},
		},
	},
	"proceso_de_pago": {
		choice: "proceso_de_pago",
		body:   "Para continuar con tu compra, elige un método de pago.",
		buttons: []whatsapp.ButtonReply{
			{ID: "pago_efectivo", Title: "Efectivo"},
			{ID: "pago_transferencia", Title: "Transferencia"},
		},
	},
	"pago_efectivo": {
		choice: "pago_efectivo",
		text:   "Dame tu nombre y dirección del envío. Te haremos llegar tu pedido lo antes posible.",
	},
}

// intentSteps routes classified free-text messages into the guided menu.
// The classifier's answer is matched verbatim; anything not in this table
// (including "otro" and malformed labels) goes to the free-form responder.
var intentSteps = map[ai.Intent]step{
	ai.IntentPedido:  transitions["pedido"],
	ai.IntentOfertas: transitions["ofertas"],
}
