package kirka

// errorCodes maps the numeric codes the game API returns in failure bodies to
// readable descriptions.
var errorCodes = map[int]string{
	101: "User is already your friend",
	102: "User not found",
	103: "User cannot change name",
	104: "Already sent friend request",
	105: "User hasn't sent you a friend request",
	106: "User already sent you a friend request",
	107: "You do not have shared connections with this user",
	108: "You don't have enough coins",
	109: "You cannot buy your own item",
	110: "Your profile cannot contain bad words",
	201: "Item is not in the user's inventory",
	202: "Item already selected",
	203: "Item not selectable",
	204: "Item cannot be sold",
	205: "Item cannot be opened",
	206: "User doesn't have this amount of the item",
	207: "Item is locked. Reason: trade offer",
	301: "Item not found",
	302: "Leader positions error",
	303: "Item ID should exist",
	401: "Clan name already taken",
	402: "You can create only one clan",
	403: "Clan not found",
	404: "User already invited to the clan",
	405: "User is in this clan",
	406: "User already belongs to another clan",
	407: "User is not a clan member",
	408: "Invite not found or not related to the user",
	409: "Your clan name cannot contain bad words",
	501: "Shop element not found",
	502: "Not enough money",
	503: "Item already purchased",
	504: "You can already change your name",
	601: "This item isn't for sale anymore",
	602: "You need level 10 to use the market",
	801: "You have not linked your Twitch account",
	802: "Token expired, re-connect your Twitch account",

	9901: "Database error",
	9902: "You do not have permission for this",
	9903: "Cannot do it to yourself",
	9904: "Exceeded length limit",
	9905: "Notification not found or not related to the user",
	9906: "Something went wrong",
	9907: "Small level for this action",
	9908: "Your friend exceeds the friends limit",
	9909: "Exceeded limit of friend requests per day",
	9910: "Rate limit exceeded",
	9911: "Service temporarily unavailable",
}

// TranslateErrorCode turns a numeric game error code into its description.
func TranslateErrorCode(code int) string {
	if msg, ok := errorCodes[code]; ok {
		return msg
	}
	return "Unknown error"
}
