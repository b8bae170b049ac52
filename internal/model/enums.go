package model

import "fmt"

// 社交平台枚举
type Platform string

const (
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram"
	PlatformYouTube   Platform = "YouTube"
)

func PlatformValues() []string {
	return []string{string(PlatformTikTok), string(PlatformInstagram), string(PlatformYouTube)}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformTikTok, PlatformInstagram, PlatformYouTube:
		return true
	}
	return false
}

// 数据来源枚举
type Source string

const (
	SourceCollabstr Source = "Collabstr"
	SourceManual    Source = "Manual"
	SourceCreable   Source = "Creable"
	SourceHeepsy    Source = "Heepsy"
)

func SourceValues() []string {
	return []string{string(SourceCollabstr), string(SourceManual), string(SourceCreable), string(SourceHeepsy)}
}

func (s Source) Valid() bool {
	switch s {
	case SourceCollabstr, SourceManual, SourceCreable, SourceHeepsy:
		return true
	}
	return false
}

// KOL性别枚举
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderLGBT   Gender = "LGBT"
)

func GenderValues() []string {
	return []string{string(GenderMale), string(GenderFemale), string(GenderLGBT)}
}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderLGBT:
		return true
	}
	return false
}

// KOL等级枚举
type Level string

const (
	LevelMid   Level = "Mid 50k-500k"
	LevelMicro Level = "Micro 10k-50k"
	LevelNano  Level = "Nano 1-10k"
)

func LevelValues() []string {
	return []string{string(LevelMid), string(LevelMicro), string(LevelNano)}
}

func (l Level) Valid() bool {
	switch l {
	case LevelMid, LevelMicro, LevelNano:
		return true
	}
	return false
}

// 发送状态枚举，对应外联工作流中的第 1~20 轮
type SendStatus string

const sendStatusRounds = 20

// SendStatusRound 返回第 n 轮对应的发送状态，n 超出范围返回空值
func SendStatusRound(n int) SendStatus {
	if n < 1 || n > sendStatusRounds {
		return ""
	}
	return SendStatus(fmt.Sprintf("Round No.%d", n))
}

func SendStatusValues() []string {
	values := make([]string, 0, sendStatusRounds)
	for i := 1; i <= sendStatusRounds; i++ {
		values = append(values, string(SendStatusRound(i)))
	}
	return values
}

func (s SendStatus) Valid() bool {
	for i := 1; i <= sendStatusRounds; i++ {
		if s == SendStatusRound(i) {
			return true
		}
	}
	return false
}
