package model

// MessageRef — непрозрачная ссылка на отправленное сообщение, достаточная
// для его последующего редактирования или удаления.
type MessageRef struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int   `json:"message_id"`
}

// Button — кнопка инлайн-клавиатуры на уровне домена. Транспортный адаптер
// преобразует ее в кнопку конкретного мессенджера.
type Button struct {
	Text string
	Data string
}
