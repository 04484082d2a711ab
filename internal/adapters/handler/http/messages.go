package http

import (
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs for user-facing copy.
const (
	MsgWelcome          = "Welcome"
	MsgEventCreated     = "EventCreated"
	MsgEventInvalid     = "EventInvalid"
	MsgEventNotFound    = "EventNotFound"
	MsgVoteSubmitted    = "VoteSubmitted"
	MsgVoteInvalid      = "VoteInvalid"
	MsgInternalError    = "InternalError"
	MsgMalformedRequest = "MalformedRequest"
	MsgRequestTooLarge  = "RequestTooLarge"
)

var englishCopy = []*i18n.Message{
	{ID: MsgWelcome, Other: "Welcome to Kairos!"},
	{ID: MsgEventCreated, Other: "Event created successfully!"},
	{ID: MsgEventInvalid, Other: "Event title and time slots must not be empty."},
	{ID: MsgEventNotFound, Other: "Oops, this event link does not exist or has expired."},
	{ID: MsgVoteSubmitted, Other: "Vote submitted! Thanks for taking part."},
	{ID: MsgVoteInvalid, Other: "Your name and at least one time slot are required."},
	{ID: MsgInternalError, Other: "Something went wrong on our side, please try again later."},
	{ID: MsgMalformedRequest, Other: "The request body is not valid JSON."},
	{ID: MsgRequestTooLarge, Other: "The request body is too large."},
}

var chineseCopy = []*i18n.Message{
	{ID: MsgWelcome, Other: "欢迎来到 Kairos!"},
	{ID: MsgEventCreated, Other: "活动创建成功！"},
	{ID: MsgEventInvalid, Other: "活动标题和候选时间不能为空哦。"},
	{ID: MsgEventNotFound, Other: "哎呀，这个活动链接不存在或已失效。"},
	{ID: MsgVoteSubmitted, Other: "投票成功！感谢你的参与。"},
	{ID: MsgVoteInvalid, Other: "你的名字和至少一个时间段都不能为空哦！"},
	{ID: MsgInternalError, Other: "服务器开小差了，请稍后再试。"},
	{ID: MsgMalformedRequest, Other: "请求内容不是有效的 JSON。"},
	{ID: MsgRequestTooLarge, Other: "请求内容太大了。"},
}

// Messages resolves user-facing copy for a request from its
// Accept-Language header, falling back to the configured default locale.
type Messages struct {
	bundle        *i18n.Bundle
	defaultLocale string
	fallback      map[string]string
}

func NewMessages(defaultLocale string) (*Messages, error) {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, englishCopy...); err != nil {
		return nil, err
	}
	if err := bundle.AddMessages(language.Chinese, chineseCopy...); err != nil {
		return nil, err
	}

	fallback := make(map[string]string, len(englishCopy))
	for _, m := range englishCopy {
		fallback[m.ID] = m.Other
	}

	return &Messages{
		bundle:        bundle,
		defaultLocale: defaultLocale,
		fallback:      fallback,
	}, nil
}

func (m *Messages) For(r *http.Request, id string) string {
	localizer := i18n.NewLocalizer(m.bundle, r.Header.Get("Accept-Language"), m.defaultLocale)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return m.fallback[id]
	}
	return msg
}
