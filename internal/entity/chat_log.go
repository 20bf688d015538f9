package entity

// ChatLog is one generative-text exchange stored in the chats collection.
type ChatLog struct {
	Query    string `bson:"query"`
	Response string `bson:"response"`
}
