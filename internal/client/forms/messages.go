package forms

// Helper texts shown next to fields. These mirror the backend-facing web
// client so both front ends speak to users identically.
const (
	MsgEmailFormat      = "올바른 이메일 주소 형식을 입력해주세요."
	MsgEmailTaken       = "중복된 이메일 입니다."
	MsgEmailCheckFailed = "이메일 확인 중 오류가 발생했습니다."
	MsgEmailAvailable   = "사용가능한 이메일입니다."

	MsgPasswordRequired = "비밀번호를 입력해주세요"
	MsgPasswordFormat   = "8자 이상 20자 이하이고 대문자, 소문자, 숫자, 특수문자를 최소 1개씩 포함하세요"
	MsgPasswordMismatch = "비밀번호가 다릅니다"

	MsgNicknameRequired    = "닉네임을 입력해주세요"
	MsgNicknameFormat      = "10자 이내, 띄어쓰기 불가"
	MsgNicknameTaken       = "중복된 닉네임입니다."
	MsgNicknameCheckFailed = "닉네임 확인 중 오류가 발생했습니다."
	MsgNicknameAvailable   = "사용가능한 닉네임입니다."

	MsgLoginFailed     = "아이디 또는 비밀번호를 확인해주세요"
	MsgComposeRequired = "제목, 내용을 모두 작성해주세요."
	MsgCurrentPwdWrong = "현재 비밀번호가 올바르지 않습니다."
)
