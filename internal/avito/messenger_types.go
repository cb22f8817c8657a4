package avito

// MessageType is the kind of content a message carries.
type MessageType string

// Message types.
const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageLink     MessageType = "link"
	MessageItem     MessageType = "item"
	MessageLocation MessageType = "location"
	MessageCall     MessageType = "call"
	MessageDeleted  MessageType = "deleted"
	MessageSystem   MessageType = "system"
)

// Direction tells whether a message was received or sent.
type Direction string

// Message directions.
const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// ImageSizes maps a size label to an image URL.
type ImageSizes struct {
	Object

	Size1280x960 string `json:"1280x960,omitempty"`
	Size140x105  string `json:"140x105,omitempty"`
	Size32x32    string `json:"32x32,omitempty"`
	Size640x480  string `json:"640x480,omitempty"`
}

type ImageContent struct {
	Object

	Sizes ImageSizes `json:"sizes"`
}

type ItemContent struct {
	Object

	ImageURL    string `json:"image_url"`
	ItemURL     string `json:"item_url"`
	PriceString string `json:"price_string,omitempty"`
	Title       string `json:"title"`
}

type LinkPreview struct {
	Object

	Description string      `json:"description,omitempty"`
	Domain      string      `json:"domain,omitempty"`
	Images      *ImageSizes `json:"images,omitempty"`
	Title       string      `json:"title,omitempty"`
	URL         string      `json:"url,omitempty"`
}

type LinkContent struct {
	Object

	Preview *LinkPreview `json:"preview,omitempty"`
	Text    string       `json:"text"`
	URL     string       `json:"url"`
}

type LocationContent struct {
	Object

	Kind  string  `json:"kind,omitempty"`
	Lat   float64 `json:"lat,omitempty"`
	Lon   float64 `json:"lon,omitempty"`
	Text  string  `json:"text,omitempty"`
	Title string  `json:"title,omitempty"`
}

type CallContent struct {
	Object

	Status       string `json:"status,omitempty"`
	TargetUserID int64  `json:"target_user_id,omitempty"`
}

// MessageContent holds exactly one populated content variant.
type MessageContent struct {
	Object

	Call     *CallContent     `json:"call,omitempty"`
	Image    *ImageContent    `json:"image,omitempty"`
	Item     *ItemContent     `json:"item,omitempty"`
	Link     *LinkContent     `json:"link,omitempty"`
	Location *LocationContent `json:"location,omitempty"`
	Text     string           `json:"text,omitempty"`
}

type MessageQuote struct {
	Object

	AuthorID int64          `json:"author_id"`
	Content  MessageContent `json:"content"`
	Created  int64          `json:"created"`
	ID       string         `json:"id"`
	Type     MessageType    `json:"type"`
}

// MessageToSend is the body of an outgoing text message.
type MessageToSend struct {
	Text string `json:"text"`
}

// Message is a chat message.
type Message struct {
	Object

	AuthorID  int64          `json:"author_id"`
	Content   MessageContent `json:"content"`
	Created   int64          `json:"created"`
	Direction Direction      `json:"direction"`
	ID        string         `json:"id"`
	IsRead    *bool          `json:"isRead,omitempty"`
	Quote     *MessageQuote  `json:"quote,omitempty"`
	Read      int64          `json:"read,omitempty"`
	Type      MessageType    `json:"type"`
}

type Meta struct {
	HasMore bool `json:"has_more"`
}

// Messages is a page of chat messages.
type Messages struct {
	Object

	Messages []Message `json:"messages"`
	Meta     Meta      `json:"meta"`
}

type ImageDetails struct {
	Size140x105 string `json:"140x105,omitempty"`
}

type Images struct {
	Count int          `json:"count"`
	Main  ImageDetails `json:"main"`
}

type ItemContextValue struct {
	Object

	ID          int64  `json:"id"`
	Images      Images `json:"images"`
	PriceString string `json:"price_string"`
	StatusID    int    `json:"status_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	UserID      int64  `json:"user_id"`
}

type ChatContext struct {
	Object

	Type  string           `json:"type"`
	Value ItemContextValue `json:"value"`
}

type AvatarImages map[string]string

type PublicUserProfile struct {
	Object

	Avatar AvatarImages `json:"avatar"`
	ItemID int64        `json:"item_id"`
	URL    string       `json:"url"`
	UserID int64        `json:"user_id"`
}

// User is a chat participant.
type User struct {
	Object

	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	PublicUserProfile PublicUserProfile `json:"public_user_profile"`
}

// Chat is a conversation, typically about one listing.
type Chat struct {
	Object

	Context     ChatContext `json:"context"`
	Created     int64       `json:"created"`
	ID          string      `json:"id"`
	LastMessage *Message    `json:"last_message,omitempty"`
	Updated     int64       `json:"updated"`
	Users       []User      `json:"users"`
}

// Messages returns a descriptor for this chat's messages, addressed from the
// bound client's account.
func (ch Chat) Messages() GetMessages {
	me, _ := ch.MeID()
	m := GetMessages{UserID: me, ChatID: ch.ID}
	m.Bind(ch.Client())
	return m
}

// Read returns a descriptor marking this chat as read.
func (ch Chat) Read() ChatRead {
	me, _ := ch.MeID()
	m := ChatRead{UserID: me, ChatID: ch.ID}
	m.Bind(ch.Client())
	return m
}

// Chats is a page of chats.
type Chats struct {
	Chats []Chat `json:"chats"`
}

// OKResponse is the acknowledgement returned by mutating endpoints.
type OKResponse struct {
	Object

	OK bool `json:"ok"`
}
